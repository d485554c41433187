package player

import (
	"testing"
	"time"
)

func beatAt(p *Player, at time.Time) TickMsg {
	return TickMsg{At: at, Gen: p.Generation()}
}

func TestPlayer_BeatAdvancesWhilePlaying(t *testing.T) {
	p := New(60)
	if cmd := p.Play(); cmd == nil {
		t.Fatal("Play should return a tick command")
	}

	start := time.Now()
	p.lastBeat = start
	if cmd := p.Beat(beatAt(p, start.Add(2*time.Second))); cmd == nil {
		t.Error("Beat mid-clip should schedule the next tick")
	}

	if p.Position() < 1.9 || p.Position() > 2.1 {
		t.Errorf("Position = %v, want ~2", p.Position())
	}
}

func TestPlayer_BeatWhilePausedIsNoop(t *testing.T) {
	p := New(60)
	if cmd := p.Beat(beatAt(p, time.Now())); cmd != nil {
		t.Error("Beat while paused should return nil")
	}
	if p.Position() != 0 {
		t.Errorf("Position = %v, want 0", p.Position())
	}
}

func TestPlayer_BeatDropsStaleGeneration(t *testing.T) {
	p := New(60)
	p.Play()
	stale := p.Generation()

	// A pause and resume within one tick interval supersedes the first
	// chain; its pending beat must not advance the clock or re-schedule.
	p.Pause()
	p.Play()
	start := time.Now()
	p.lastBeat = start

	if cmd := p.Beat(TickMsg{At: start.Add(2 * time.Second), Gen: stale}); cmd != nil {
		t.Error("a beat from a superseded chain must not schedule another tick")
	}
	if p.Position() != 0 {
		t.Errorf("Position = %v, want 0 after a stale beat", p.Position())
	}

	if cmd := p.Beat(beatAt(p, start.Add(2*time.Second))); cmd == nil {
		t.Error("the live chain's beat should keep ticking")
	}
	if p.Position() < 1.9 || p.Position() > 2.1 {
		t.Errorf("Position = %v, want ~2 after the live beat", p.Position())
	}
}

func TestPlayer_StopsAtDuration(t *testing.T) {
	p := New(5)
	p.Play()
	start := time.Now()
	p.lastBeat = start

	if cmd := p.Beat(beatAt(p, start.Add(10*time.Second))); cmd != nil {
		t.Error("Beat past the end should not schedule another tick")
	}
	if p.Position() != 5 {
		t.Errorf("Position = %v, want clamped to 5", p.Position())
	}
	if p.Playing() {
		t.Error("player should pause at the end of the clip")
	}
}

func TestPlayer_SeekClamps(t *testing.T) {
	p := New(30)

	p.Seek(-4)
	if p.Position() != 0 {
		t.Errorf("Position = %v, want 0 after negative seek", p.Position())
	}

	p.Seek(100)
	if p.Position() != 30 {
		t.Errorf("Position = %v, want 30 after overshoot seek", p.Position())
	}

	p.Seek(12.5)
	if p.Position() != 12.5 {
		t.Errorf("Position = %v, want 12.5", p.Position())
	}
}

func TestPlayer_Toggle(t *testing.T) {
	p := New(0)

	if cmd := p.Toggle(); cmd == nil {
		t.Error("toggling from paused should start ticking")
	}
	if !p.Playing() {
		t.Error("player should be playing after first toggle")
	}

	if cmd := p.Toggle(); cmd != nil {
		t.Error("toggling to paused should not schedule ticks")
	}
	if p.Playing() {
		t.Error("player should be paused after second toggle")
	}
}
