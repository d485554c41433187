package player

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickInterval is the cadence of playback progress updates.
const TickInterval = 500 * time.Millisecond

// TickMsg carries one playback progress beat. Gen ties the beat to the Play
// call that scheduled its chain, so a pause and resume within one interval
// does not leave two chains driving the clock.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

func tick(gen uint64) tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

// Player is a monotonic playback clock standing in for the media
// collaborator: the rest of the app consumes only its position and Seek,
// treating it as an opaque capability.
type Player struct {
	position float64 // seconds
	duration float64 // 0 means unbounded
	playing  bool
	lastBeat time.Time
	gen      uint64
}

// New creates a paused player at position 0 with the given duration bound.
func New(duration float64) *Player {
	return &Player{duration: duration}
}

// Position returns the current playback position in seconds.
func (p *Player) Position() float64 {
	return p.position
}

// Playing reports whether the clock is advancing.
func (p *Player) Playing() bool {
	return p.playing
}

// Generation identifies the live tick chain; Beat drops beats stamped with
// any other generation.
func (p *Player) Generation() uint64 {
	return p.gen
}

// Play starts the clock on a fresh tick chain. Returns the tick command
// that drives progress.
func (p *Player) Play() tea.Cmd {
	if p.playing {
		return nil
	}
	p.playing = true
	p.gen++
	p.lastBeat = time.Now()
	return tick(p.gen)
}

// Pause stops the clock. Pending tick messages become no-ops.
func (p *Player) Pause() {
	p.playing = false
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() tea.Cmd {
	if p.playing {
		p.Pause()
		return nil
	}
	return p.Play()
}

// Seek jumps to t seconds, clamped to [0, duration]. Playback state is
// unchanged; callers that want playback to resume follow up with Play.
func (p *Player) Seek(t float64) {
	if t < 0 {
		t = 0
	}
	if p.duration > 0 && t > p.duration {
		t = p.duration
	}
	p.position = t
}

// Beat consumes one TickMsg: advances the position by the real elapsed time
// and schedules the next beat. Returns nil when paused, at the end of the
// clip, or when the beat belongs to a superseded tick chain.
func (p *Player) Beat(msg TickMsg) tea.Cmd {
	if !p.playing || msg.Gen != p.gen {
		return nil
	}

	elapsed := msg.At.Sub(p.lastBeat).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	p.lastBeat = msg.At
	p.position += elapsed

	if p.duration > 0 && p.position >= p.duration {
		p.position = p.duration
		p.playing = false
		return nil
	}
	return tick(p.gen)
}
