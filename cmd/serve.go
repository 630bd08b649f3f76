package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordsmith/backing"
	"github.com/jsphweid/chordsmith/bucket"
	"github.com/jsphweid/chordsmith/constants"
	"github.com/jsphweid/chordsmith/model"
	"github.com/jsphweid/chordsmith/pitch"
	"github.com/jsphweid/chordsmith/sample"
	"github.com/jsphweid/chordsmith/util"
	"github.com/jsphweid/chordsmith/voicing"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	maxBodyBytes       = 1 << 20
	sentryFlushTimeout = 2 * time.Second
)

var (
	sharedEngine = sync.OnceValue(newEngine)

	searchBuckets model.Buckets
	searchFiles   model.FileNumToMidiPath
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the HTTP API on $PORT",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

// LoadServeFiles loads the chord index written by the index command. A missing index
// leaves search empty.
func LoadServeFiles(outDir string) error {
	buckets, err := util.ReadJSON[model.Buckets](BucketsPath(outDir))
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("no chord index found, search is empty", zap.String("dir", outDir))
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading buckets: %w", err)
	}
	manifest, err := util.ReadJSON[struct {
		Files model.FileNumToMidiPath `json:"files"`
	}](ManifestPath(outDir))
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	searchBuckets, searchFiles = buckets, manifest.Files
	return nil
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestID, withLogging, withRecovery)
	router.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/segment", HandleSegment).Methods(http.MethodPost)
	router.HandleFunc("/identify", HandleIdentify).Methods(http.MethodPost)
	router.HandleFunc("/voicing", HandleVoicing).Methods(http.MethodGet)
	router.HandleFunc("/backing", HandleBacking).Methods(http.MethodPost)
	router.HandleFunc("/search", HandleSearch).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(router)
}

func serve() error {
	if dsn := constants.GetSentryDSN(); dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: constants.GetEnvironment(),
		})
		if err != nil {
			log.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(sentryFlushTimeout)
		}
	}

	if err := LoadServeFiles(constants.GetOutDir()); err != nil {
		return err
	}

	addr := ":" + constants.GetPort()
	log.Info("listening", zap.String("addr", addr))
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	err := srv.ListenAndServe()
	sentry.CaptureException(err)
	return err
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
			r.Header.Set("X-Request-Id", id)
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", r.Header.Get("X-Request-Id")),
		)
	})
}

func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(r)
				hub.Recover(p)
				log.Error("handler panic", zap.Any("panic", p), zap.String("path", r.URL.Path))
				writeError(w, http.StatusInternalServerError, errors.New("internal error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn("writing response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func HandleSegment(w http.ResponseWriter, r *http.Request) {
	var input model.SegmentRequestBody
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	for i, n := range input.Notes {
		if n.Pitch > pitch.MaxMidi || n.StartTime < 0 || n.Duration <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("note %d: need pitch 0-127, start_time >= 0 and duration > 0", i))
			return
		}
	}

	regions := sharedEngine().Segment(input.Notes)
	if regions == nil {
		regions = []model.ChordRegion{}
	}
	writeJSON(w, http.StatusOK, model.SegmentResponse{Regions: regions})
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	for _, p := range input.Pitches {
		if p < pitch.MinMidi || p > pitch.MaxMidi {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %d", pitch.ErrOutOfRange, p))
			return
		}
	}

	m, ok := identify(input.Pitches)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no chord matches these pitches"))
		return
	}
	writeJSON(w, http.StatusOK, model.IdentifyResponse{
		Root:    pitch.PitchClassName(m.Root, false),
		Quality: string(m.Quality),
		Label:   m.Label,
		Exact:   m.Exact,
	})
}

func HandleVoicing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	octave := backing.DefaultOctave
	if s := q.Get("octave"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid octave %q", s))
			return
		}
		octave = n
	}
	strict, _ := strconv.ParseBool(q.Get("strict"))

	g := voicing.Generator{Dict: dict, Strict: strict}
	notes, sym, err := g.Voice(q.Get("symbol"), octave)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.VoicingResponse{Symbol: sym.Text, Notes: notes, Fallback: sym.Fallback})
}

// HandleBacking returns the pattern as JSON, or as a MIDI file with ?format=midi.
func HandleBacking(w http.ResponseWriter, r *http.Request) {
	var input model.BackingRequestBody
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g := backing.Generator{Voicer: &voicing.Generator{Dict: dict}}
	p, err := g.Generate(input.Context, backing.Options{
		Style:  backing.Style(input.Style),
		Bars:   input.Bars,
		Octave: input.Octave,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if r.URL.Query().Get("format") != "midi" {
		writeJSON(w, http.StatusOK, p)
		return
	}
	bpm, err := strconv.ParseFloat(r.URL.Query().Get("bpm"), 64)
	if err != nil {
		bpm = sample.DefaultBPM
	}
	w.Header().Set("Content-Type", "audio/midi")
	if err := sample.Write(w, p, sample.Options{BPM: bpm}); err != nil {
		log.Warn("writing midi response", zap.Error(err))
	}
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	if label == "" {
		writeError(w, http.StatusBadRequest, errors.New("label is required"))
		return
	}
	writeJSON(w, http.StatusOK, bucket.Search(searchBuckets, searchFiles, label))
}
