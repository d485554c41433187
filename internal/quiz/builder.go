package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Okyu59/TubeLingo/internal/bundle"
)

// ErrEmptyBank is returned when no usable question exists for a session.
// Callers keep the learner on the setup screen and show a notice.
var ErrEmptyBank = errors.New("quiz bank has no usable questions")

// AllowedCounts are the session lengths offered on the setup screen.
var AllowedCounts = []int{3, 5, 10}

// SessionQuestion is a bank question annotated with a session-local
// sequence number. Created fresh per attempt, discarded at session end.
type SessionQuestion struct {
	Seq int // 0-based, contiguous within the session
	bundle.QuizQuestion
}

// Config is the learner-chosen session shape.
type Config struct {
	Count      int
	Difficulty bundle.Difficulty
}

// Validate rejects counts outside the fixed allowed set.
func (c Config) Validate() error {
	for _, n := range AllowedCounts {
		if c.Count == n {
			return nil
		}
	}
	return fmt.Errorf("question count %d not in %v", c.Count, AllowedCounts)
}

// Build derives a fixed-length shuffled session from the bank:
// filter by difficulty, fall back to the whole bank when the filter is
// empty, pad by resampling with replacement when the pool is short, then
// shuffle and truncate to exactly cfg.Count. Duplicate questions from
// padding are accepted; Seq keeps list keys stable regardless.
func Build(bank []bundle.QuizQuestion, cfg Config, rng *rand.Rand) ([]SessionQuestion, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := make([]bundle.QuizQuestion, 0, len(bank))
	for _, q := range bank {
		if q.Difficulty == cfg.Difficulty {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		pool = append(pool, bank...)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyBank
	}

	picked := make([]bundle.QuizQuestion, len(pool), max(len(pool), cfg.Count))
	copy(picked, pool)
	for len(picked) < cfg.Count {
		picked = append(picked, pool[rng.IntN(len(pool))])
	}

	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	picked = picked[:cfg.Count]

	session := make([]SessionQuestion, cfg.Count)
	for i, q := range picked {
		session[i] = SessionQuestion{Seq: i, QuizQuestion: q}
	}
	return session, nil
}
