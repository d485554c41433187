package transcript

import (
	"sort"

	"github.com/Okyu59/TubeLingo/internal/bundle"
)

// ActiveLine returns the index of the transcript line active at playback
// position t: the last line whose timestamp is <= t. Positions before the
// first line clamp to 0; positions at or past the last timestamp return the
// last index. Returns -1 for an empty script.
//
// Lines must be sorted by timestamp, which bundle.New guarantees.
func ActiveLine(lines []bundle.TranscriptLine, t float64) int {
	if len(lines) == 0 {
		return -1
	}
	// First line whose timestamp strictly exceeds t.
	next := sort.Search(len(lines), func(i int) bool {
		return lines[i].Time > t
	})
	if next == 0 {
		return 0
	}
	return next - 1
}

// Synchronizer tracks the active line across playback ticks so callers only
// re-render when the line actually changes. Seeking by line selection sets
// the index directly, bypassing the scan.
type Synchronizer struct {
	lines  []bundle.TranscriptLine
	active int
}

// NewSynchronizer creates a Synchronizer over a sorted transcript.
func NewSynchronizer(lines []bundle.TranscriptLine) *Synchronizer {
	return &Synchronizer{lines: lines, active: -1}
}

// Active returns the current active index (-1 before the first tick on an
// empty script).
func (s *Synchronizer) Active() int {
	return s.active
}

// Tick recomputes the active line for playback position t. Returns true when
// the active index changed. Idempotent and cheap enough to run on every
// progress callback.
func (s *Synchronizer) Tick(t float64) bool {
	idx := ActiveLine(s.lines, t)
	if idx == s.active {
		return false
	}
	s.active = idx
	return true
}

// Select sets the active line directly (learner clicked a line) and returns
// the timestamp the player should seek to. Out-of-range indices are ignored
// and return false.
func (s *Synchronizer) Select(idx int) (float64, bool) {
	if idx < 0 || idx >= len(s.lines) {
		return 0, false
	}
	s.active = idx
	return s.lines[idx].Time, true
}
