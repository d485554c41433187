package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Okyu59/TubeLingo/internal/bundle"
	"github.com/Okyu59/TubeLingo/internal/progress"
	core "github.com/Okyu59/TubeLingo/internal/quiz"
	"github.com/Okyu59/TubeLingo/internal/router"
	"github.com/Okyu59/TubeLingo/internal/screens/result"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions(n int) []core.SessionQuestion {
	qs := make([]core.SessionQuestion, n)
	for i := range qs {
		qs[i] = core.SessionQuestion{
			Seq: i,
			QuizQuestion: bundle.QuizQuestion{
				Question:   "빈칸에 들어갈 말은?",
				Options:    []string{"하나", "둘", "셋", "넷"},
				Answer:     1,
				Rationale:  "둘이 맞습니다.",
				Difficulty: bundle.DifficultyNormal,
			},
		}
	}
	return qs
}

func TestQuizScreen_SubmitGradesAnswer(t *testing.T) {
	s := New(testQuestions(2), progress.New(100))

	// Move to the correct option (index 1) and submit.
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter))

	if !s.run.Answered {
		t.Fatal("expected question to be answered after enter")
	}
	if !s.run.LastCorrect {
		t.Error("expected correct answer to be graded correct")
	}
	if s.run.Score != 1 {
		t.Errorf("Score = %d, want 1", s.run.Score)
	}
	if !s.choice.Locked {
		t.Error("expected choice component to be locked after submit")
	}
}

func TestQuizScreen_SubmitWithoutSelectionGradesFirstOption(t *testing.T) {
	s := New(testQuestions(1), progress.New(100))

	// The cursor starts on option 0, which is wrong here.
	s.Update(specialKey(tea.KeyEnter))

	if !s.run.Answered {
		t.Fatal("expected question to be answered")
	}
	if s.run.LastCorrect {
		t.Error("option 0 should be graded incorrect")
	}
}

func TestQuizScreen_AdvanceMovesToNextQuestion(t *testing.T) {
	s := New(testQuestions(3), progress.New(100))

	s.Update(specialKey(tea.KeyEnter)) // submit
	s.Update(specialKey(tea.KeyEnter)) // advance

	if s.run.Index != 1 {
		t.Errorf("Index = %d, want 1", s.run.Index)
	}
	if s.run.Answered {
		t.Error("next question should start unanswered")
	}
	if s.choice.Locked {
		t.Error("choice component should be rebuilt unlocked")
	}
}

func TestQuizScreen_FinalAdvanceEndsRun(t *testing.T) {
	stats := progress.New(100)
	s := New(testQuestions(1), stats)

	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter)) // submit
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command on final advance")
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*result.ResultScreen); !ok {
		t.Fatalf("expected result screen, got %T", replace.Screen)
	}

	// The result screen applied the reward on construction: 1 correct of 1.
	if want := 1*progress.XPPerCorrect + progress.XPCompletionBonus; stats.TotalXP != want {
		t.Errorf("TotalXP = %d, want %d", stats.TotalXP, want)
	}
}

func TestQuizScreen_EscAbandonsWithoutReward(t *testing.T) {
	stats := progress.New(100)
	s := New(testQuestions(2), stats)

	s.Update(specialKey(tea.KeyEnter)) // submit one answer
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a pop command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg on esc")
	}
	if stats.TotalXP != 0 {
		t.Errorf("abandoned run must not award XP, got %d", stats.TotalXP)
	}
}

func TestQuizScreen_EmptyQuestionsShowsFallback(t *testing.T) {
	s := New(nil, progress.New(100))

	if !s.broken {
		t.Fatal("expected broken state for empty question slice")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a pop command from the fallback state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg from the fallback state")
	}
}
