package progress

import (
	"time"

	"github.com/Okyu59/TubeLingo/internal/bundle"
)

// Reward curve: one correct answer is worth 10 XP, finishing a quiz at all
// is worth a flat 20, regardless of difficulty.
const (
	XPPerCorrect      = 10
	XPCompletionBonus = 20
)

// SavedWord is a vocabulary entry stamped with the date it was saved.
type SavedWord struct {
	bundle.VocabularyEntry
	SavedAt time.Time
}

// Stats is the cumulative in-memory progress state. It lives for the
// process lifetime only; nothing here is persisted.
type Stats struct {
	TotalXP   int
	TodayXP   int
	TodayGoal int
	Streak    int

	words       []SavedWord
	wordIndex   map[string]struct{}
	lastQuizDay string // YYYY-MM-DD of the last streak-counted quiz

	now func() time.Time
}

// New creates empty progress state with the given daily XP goal.
func New(todayGoal int) *Stats {
	return &Stats{
		TodayGoal: todayGoal,
		wordIndex: make(map[string]struct{}),
		now:       time.Now,
	}
}

// QuizReward computes the XP awarded for a completed quiz.
func QuizReward(score int) int {
	return score*XPPerCorrect + XPCompletionBonus
}

// AddQuizResult folds a completed quiz into the stats and returns the XP
// gained. The streak advances on the first completed quiz of each calendar
// day; further quizzes the same day leave it unchanged.
func (s *Stats) AddQuizResult(score int) int {
	gained := QuizReward(score)
	s.TotalXP += gained
	s.TodayXP += gained

	day := s.now().Format(time.DateOnly)
	if day != s.lastQuizDay {
		s.Streak++
		s.lastQuizDay = day
	}
	return gained
}

// SaveWord adds a vocabulary entry to the saved set, stamped with today's
// date. Idempotent by surface form: saving an already-saved word is a no-op
// returning false.
func (s *Stats) SaveWord(entry bundle.VocabularyEntry) bool {
	if _, exists := s.wordIndex[entry.Word]; exists {
		return false
	}
	s.wordIndex[entry.Word] = struct{}{}
	s.words = append(s.words, SavedWord{VocabularyEntry: entry, SavedAt: s.now()})
	return true
}

// HasWord reports whether a surface form is already saved.
func (s *Stats) HasWord(word string) bool {
	_, ok := s.wordIndex[word]
	return ok
}

// Words returns the saved words in insertion order.
func (s *Stats) Words() []SavedWord {
	return s.words
}

// GoalProgress returns today's XP as a fraction of the daily goal, capped
// at 1.
func (s *Stats) GoalProgress() float64 {
	if s.TodayGoal <= 0 {
		return 0
	}
	f := float64(s.TodayXP) / float64(s.TodayGoal)
	if f > 1 {
		return 1
	}
	return f
}
