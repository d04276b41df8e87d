package practice

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// saveDebounce is the quiet window coalescing shape writes. Rapid
// successive mutations trigger a single durable re-serialization.
const saveDebounce = time.Second

// Snapshot store key layout. Session keys are namespaced by session id;
// numeric values are decimal text so absence and zero stay distinct.
const (
	keyTabs   = "tabs"
	keyActive = "active"

	suffixUser           = "user"
	suffixDistances      = "distances"
	suffixActiveDistance = "active_distance"
	suffixAngle          = "angle"
	suffixWeather        = "weather"
	suffixHumidity       = "humidity"
	suffixTemperature    = "temperature"
	suffixSoil           = "soil"
	suffixMolkkyWeight   = "molkky_weight"
	suffixDraftIDs       = "draft_ids"
)

func sessionKey(id, suffix string) string {
	return "session_" + id + "_" + suffix
}

// saveShape serializes the registry's current shape and replaces the
// snapshot store wholesale, so keys of removed sessions never linger. It
// runs on the debounce goroutine; failures are reported, not fatal, and the
// next settled change retries.
func (r *Registry) saveShape() {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return
	}
	shape := r.serializeShapeLocked()
	r.mu.Unlock()

	r.prefs.ReplaceAll(shape)
	if err := r.prefs.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist session shape: %v\n", err)
	}
}

func (r *Registry) serializeShapeLocked() map[string]string {
	shape := map[string]string{
		keyTabs:   strings.Join(r.tabs, ","),
		keyActive: r.activeID,
	}
	for _, id := range r.tabs {
		s, ok := r.sessions[id]
		if !ok {
			continue
		}
		put := func(suffix, value string) {
			shape[sessionKey(id, suffix)] = value
		}
		put(suffixUser, strconv.Itoa(s.UserID))
		put(suffixDistances, joinFloats(s.Distances))
		if s.ActiveDistance != nil {
			put(suffixActiveDistance, formatFloat(*s.ActiveDistance))
		}
		put(suffixAngle, string(s.Angle))
		if s.Env.Weather != nil {
			put(suffixWeather, *s.Env.Weather)
		}
		if s.Env.Humidity != nil {
			put(suffixHumidity, formatFloat(*s.Env.Humidity))
		}
		if s.Env.Temperature != nil {
			put(suffixTemperature, formatFloat(*s.Env.Temperature))
		}
		if s.Env.Soil != nil {
			put(suffixSoil, *s.Env.Soil)
		}
		if s.Env.MolkkyWeight != nil {
			put(suffixMolkkyWeight, formatFloat(*s.Env.MolkkyWeight))
		}
		put(suffixDraftIDs, joinInts(draftIDs(s.Drafts)))
	}
	return shape
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinFloats(fs []float64) string {
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, formatFloat(f))
	}
	return strings.Join(parts, ",")
}

func joinInts(is []int) string {
	parts := make([]string, 0, len(is))
	for _, i := range is {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, ",")
}

// saver coalesces bursts of trigger calls into a single save after a quiet
// period. close flushes a pending save synchronously.
type saver struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	pending bool
	closed  bool
}

func newSaver(delay time.Duration, fn func()) *saver {
	return &saver{delay: delay, fn: fn}
}

func (s *saver) trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = true
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.fire)
	} else {
		s.timer.Reset(s.delay)
	}
}

func (s *saver) fire() {
	s.mu.Lock()
	if s.closed || !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.mu.Unlock()
	s.fn()
}

func (s *saver) close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	flush := s.pending
	s.pending = false
	s.mu.Unlock()
	if flush {
		s.fn()
	}
}
