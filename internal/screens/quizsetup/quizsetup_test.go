package quizsetup

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Okyu59/TubeLingo/internal/bundle"
	"github.com/Okyu59/TubeLingo/internal/progress"
	"github.com/Okyu59/TubeLingo/internal/router"
	quizscreen "github.com/Okyu59/TubeLingo/internal/screens/quiz"
)

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testBundle(bank []bundle.QuizQuestion) *bundle.StudyBundle {
	return bundle.New("dQw4w9WgXcQ", "Test Video", nil, nil, bank)
}

func singleQuestionBank() []bundle.QuizQuestion {
	return []bundle.QuizQuestion{{
		Question:   "문제",
		Options:    []string{"가", "나", "다", "라"},
		Answer:     0,
		Difficulty: bundle.DifficultyEasy,
	}}
}

func TestDifficultyChoicesCoverBankTags(t *testing.T) {
	want := []bundle.Difficulty{
		bundle.DifficultyEasy,
		bundle.DifficultyNormal,
		bundle.DifficultyHard,
	}
	if len(difficulties) != len(want) {
		t.Fatalf("difficulties has %d entries, want %d", len(difficulties), len(want))
	}
	for i, d := range want {
		if difficulties[i] != d {
			t.Errorf("difficulties[%d] = %q, want %q", i, difficulties[i], d)
		}
		if difficultyLabels[d] == "" {
			t.Errorf("no label for difficulty %q", d)
		}
	}
}

func TestSetupScreen_DefaultsToNormalAndSmallestCount(t *testing.T) {
	s := New(testBundle(singleQuestionBank()), progress.New(100))

	if got := difficulties[s.difficulty]; got != bundle.DifficultyNormal {
		t.Errorf("default difficulty = %q, want normal", got)
	}
	if s.count != 0 {
		t.Errorf("default count index = %d, want 0", s.count)
	}
}

func TestSetupScreen_StartPushesQuizScreen(t *testing.T) {
	s := New(testBundle(singleQuestionBank()), progress.New(100))

	s.row = rowStart
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a navigation command from start")
	}

	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*quizscreen.QuizScreen); !ok {
		t.Fatalf("expected quiz screen, got %T", push.Screen)
	}
}

func TestSetupScreen_EmptyBankStaysWithNotice(t *testing.T) {
	s := New(testBundle(nil), progress.New(100))

	s.row = rowStart
	_, cmd := s.Update(enter())
	if cmd != nil {
		t.Fatal("empty bank must not start a quiz")
	}
	if s.notice == "" {
		t.Error("expected a visible notice for an empty bank")
	}
}

func TestSetupScreen_CycleWrapsAround(t *testing.T) {
	s := New(testBundle(nil), progress.New(100))

	s.row = rowCount
	s.cycle(-1)
	if s.count != 2 {
		t.Errorf("count index after left from 0 = %d, want 2", s.count)
	}
	s.cycle(1)
	if s.count != 0 {
		t.Errorf("count index after wrapping right = %d, want 0", s.count)
	}
}

func TestSetupScreen_EscPops(t *testing.T) {
	s := New(testBundle(nil), progress.New(100))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}
