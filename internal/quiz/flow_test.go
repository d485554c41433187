package quiz

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Okyu59/TubeLingo/internal/analyze"
	"github.com/Okyu59/TubeLingo/internal/bundle"
	"github.com/Okyu59/TubeLingo/internal/progress"
)

const flowPayload = `{
	"videoId": "dQw4w9WgXcQ",
	"title": "Learn Korean Greetings",
	"script": [
		{"time": 0.0, "text": "Hello everyone", "kr": "안녕하세요 여러분"},
		{"time": 4.2, "text": "Welcome back", "kr": "다시 오신 것을 환영합니다"}
	],
	"vocabulary": [
		{"word": "hello", "type": "감탄사", "meaning": "안녕하세요"}
	],
	"quizBank": [
		{
			"question": "'hello'의 뜻은?",
			"options": ["안녕하세요", "감사합니다", "죄송합니다", "환영합니다"],
			"answer": 0,
			"rationale": "hello는 인사말입니다.",
			"difficulty": "easy"
		}
	]
}`

// Exercises the whole learning loop below the UI: analysis response to
// study bundle, bundle to padded quiz session, session to XP reward.
func TestAnalyzeToQuizRewardFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(flowPayload))
	}))
	defer srv.Close()

	client := analyze.NewClient(srv.URL, 5*time.Second)
	b, err := client.Analyze(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, b.QuizBank, 1)

	// A three-question session from a one-question easy bank repeats the
	// question; every copy gets its own sequence number.
	rng := rand.New(rand.NewPCG(1, 2))
	questions, err := Build(b.QuizBank, Config{Count: 3, Difficulty: bundle.DifficultyEasy}, rng)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	for i, q := range questions {
		assert.Equal(t, i, q.Seq)
		assert.Equal(t, "'hello'의 뜻은?", q.Question)
	}

	run := NewRun(questions)
	for !run.Complete {
		run.Select(0)
		require.True(t, run.Submit())
		run.Advance()
	}
	assert.Equal(t, 3, run.Score)

	stats := progress.New(100)
	gained := stats.AddQuizResult(run.Score)
	assert.Equal(t, 50, gained)
	assert.Equal(t, 50, stats.TotalXP)
	assert.Equal(t, 1, stats.Streak)
}
