package quiz

import (
	"github.com/google/uuid"
)

// Run advances through a built session one question at a time:
// unanswered(i) -> answered(i) -> unanswered(i+1) | complete.
type Run struct {
	AttemptID string
	Questions []SessionQuestion

	Index       int
	Selected    int // option index, -1 when nothing selected
	Answered    bool
	LastCorrect bool
	Score       int
	Complete    bool
}

// NewRun starts a fresh attempt over an immutable session list.
func NewRun(session []SessionQuestion) *Run {
	return &Run{
		AttemptID: uuid.New().String(),
		Questions: session,
		Selected:  -1,
	}
}

// Current returns the active question. ok is false when the index is out of
// range, which callers render as a load failure rather than crashing on.
func (r *Run) Current() (SessionQuestion, bool) {
	if r.Index < 0 || r.Index >= len(r.Questions) {
		return SessionQuestion{}, false
	}
	return r.Questions[r.Index], true
}

// Select records the highlighted option. Ignored once answered.
func (r *Run) Select(option int) {
	if r.Answered || r.Complete {
		return
	}
	q, ok := r.Current()
	if !ok || option < 0 || option >= len(q.Options) {
		return
	}
	r.Selected = option
}

// Submit scores the selected option against the current question. Valid only
// in the unanswered state with a selection; otherwise a no-op returning
// false. Score increases by exactly one on a match.
func (r *Run) Submit() bool {
	if r.Answered || r.Complete || r.Selected < 0 {
		return false
	}
	q, ok := r.Current()
	if !ok {
		return false
	}

	r.LastCorrect = r.Selected == q.Answer
	if r.LastCorrect {
		r.Score++
	}
	r.Answered = true
	return true
}

// Advance moves past an answered question. On the last question the run
// becomes complete; otherwise selection and answered state reset for the
// next question. Valid only in the answered state.
func (r *Run) Advance() {
	if !r.Answered || r.Complete {
		return
	}
	if r.Index >= len(r.Questions)-1 {
		r.Complete = true
		return
	}
	r.Index++
	r.Selected = -1
	r.Answered = false
}

// Length returns the session length.
func (r *Run) Length() int {
	return len(r.Questions)
}
