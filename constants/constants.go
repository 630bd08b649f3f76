package constants

import (
	"errors"
	"os"
	"strconv"

	"github.com/jsphweid/chordsmith/chord"
)

const (
	DefaultOutDir      = "./out"
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultEnvironment = "development"

	// files written by the index command
	ManifestName = "manifest.json"
	BucketsName  = "buckets.json"
)

func getOr(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func GetOutDir() string {
	return getOr("OUT_DIR", DefaultOutDir)
}

func GetMidiDir() (string, error) {
	path := os.Getenv("MIDI_DIR")
	if path != "" {
		return path, nil
	}
	return "", errors.New("MIDI_DIR environment variable is not set")
}

func GetPort() string {
	return getOr("PORT", DefaultPort)
}

func GetLogLevel() string {
	return getOr("LOG_LEVEL", DefaultLogLevel)
}

// GetLogFormat is "json" (the default) or "console".
func GetLogFormat() string {
	return getOr("LOG_FORMAT", "json")
}

func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

func GetEnvironment() string {
	return getOr("ENVIRONMENT", DefaultEnvironment)
}

func getSeconds(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// GetChordOptions reads GAP_THRESHOLD and MERGE_GAP_THRESHOLD (seconds) over the defaults.
func GetChordOptions() chord.Options {
	return chord.Options{
		GapThreshold:      getSeconds("GAP_THRESHOLD", chord.DefaultGapThreshold),
		MergeGapThreshold: getSeconds("MERGE_GAP_THRESHOLD", chord.DefaultMergeGapThreshold),
	}
}
