package live

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordsmith/chord"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Tracker keeps the notes currently held on a live input. Keys are counted, so the same
// key held on two channels stays down until both are released.
type Tracker struct {
	mu      sync.Mutex
	counts  [128]int
	matcher *chord.Matcher
}

func NewTracker(m *chord.Matcher) *Tracker {
	return &Tracker{matcher: m}
}

func (t *Tracker) NoteOn(key uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if key < 128 {
		t.counts[key]++
	}
}

func (t *Tracker) NoteOff(key uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if key < 128 && t.counts[key] > 0 {
		t.counts[key]--
	}
}

func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts = [128]int{}
}

// Held returns the held keys in ascending order.
func (t *Tracker) Held() []uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var res []uint8
	for key, count := range t.counts {
		if count > 0 {
			res = append(res, uint8(key))
		}
	}
	return res
}

// Current identifies the held notes, using the lowest as bass.
func (t *Tracker) Current() (chord.Match, bool) {
	held := t.Held()
	if len(held) == 0 {
		return chord.Match{}, false
	}
	pcs := make([]int, len(held))
	for i, key := range held {
		pcs[i] = int(key) % 12
	}
	return t.matcher.Match(pcs, pcs[0])
}

type Update struct {
	Held    []uint8
	Match   chord.Match
	Matched bool
}

// Listener feeds live MIDI messages into a Tracker and reports the held chord once the
// input has been quiet for the debounce interval. Repeated identical states are reported once.
type Listener struct {
	tracker  *Tracker
	debounce func(f func())
	onUpdate func(Update)

	mu   sync.Mutex
	last string
}

func NewListener(m *chord.Matcher, wait time.Duration, onUpdate func(Update)) *Listener {
	return &Listener{
		tracker:  NewTracker(m),
		debounce: debounce.New(wait),
		onUpdate: onUpdate,
	}
}

func (l *Listener) Tracker() *Tracker {
	return l.tracker
}

// Handle is a midi.ListenTo callback.
func (l *Listener) Handle(msg gomidi.Message, timestampms int32) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		l.tracker.NoteOn(key)
	case msg.GetNoteEnd(&ch, &key):
		l.tracker.NoteOff(key)
	default:
		return
	}
	l.debounce(l.report)
}

func (l *Listener) report() {
	held := l.tracker.Held()
	m, ok := l.tracker.Current()

	state := string(held)
	l.mu.Lock()
	if state == l.last {
		l.mu.Unlock()
		return
	}
	l.last = state
	l.mu.Unlock()

	l.onUpdate(Update{Held: held, Match: m, Matched: ok})
}
