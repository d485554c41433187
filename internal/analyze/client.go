package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Okyu59/TubeLingo/internal/bundle"
)

// Client calls the analysis collaborator. One request per submission; the
// submit path guarantees at most one is in flight.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a Client for the given collaborator base URL. timeout
// bounds the whole analysis call; the collaborator transcribes and runs a
// model, so it is generous by default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
	}
}

type analyzeRequest struct {
	URL string `json:"url"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

type scriptLine struct {
	Time float64 `json:"time"`
	Text string  `json:"text"`
	Kr   string  `json:"kr"`
}

type vocabEntry struct {
	Word    string `json:"word"`
	Type    string `json:"type"`
	Meaning string `json:"meaning"`
}

type bankEntry struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     int      `json:"answer"`
	Rationale  string   `json:"rationale"`
	Difficulty string   `json:"difficulty"`
}

type analyzeResponse struct {
	VideoID    string       `json:"videoId"`
	Title      string       `json:"title"`
	Script     []scriptLine `json:"script"`
	Vocabulary []vocabEntry `json:"vocabulary"`
	QuizBank   []bankEntry  `json:"quizBank"`
}

// Analyze submits a video URL and returns the resulting StudyBundle.
// Every failure path returns a *RequestError carrying a user-facing message;
// the bundle is never partially populated.
func (c *Client) Analyze(ctx context.Context, videoURL string) (*bundle.StudyBundle, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(analyzeRequest{URL: videoURL})
	if err != nil {
		return nil, &RequestError{Detail: DefaultDetail, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Detail: DefaultDetail, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("analyze request failed", "err", err)
		return nil, &RequestError{Detail: DefaultDetail, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Status: resp.StatusCode, Detail: DefaultDetail, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		slog.Warn("analyze rejected", "status", resp.StatusCode, "detail", eb.Detail)
		return nil, &RequestError{
			Status: resp.StatusCode,
			Detail: eb.Detail,
			Err:    fmt.Errorf("HTTP %d from collaborator", resp.StatusCode),
		}
	}

	if err := validatePayload(raw); err != nil {
		slog.Error("analyze payload rejected", "err", err)
		return nil, &RequestError{Status: resp.StatusCode, Detail: DefaultDetail, Err: err}
	}

	var payload analyzeResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &RequestError{Status: resp.StatusCode, Detail: DefaultDetail, Err: err}
	}
	if err := checkAnswerRanges(payload.QuizBank); err != nil {
		slog.Error("analyze payload rejected", "err", err)
		return nil, &RequestError{Status: resp.StatusCode, Detail: DefaultDetail, Err: err}
	}

	slog.Info("analyze succeeded",
		"videoId", payload.VideoID,
		"lines", len(payload.Script),
		"bank", len(payload.QuizBank),
		"latency", time.Since(start))

	return toBundle(payload), nil
}

// checkAnswerRanges enforces the one constraint the schema cannot: each
// correct-option index must point into its own options list.
func checkAnswerRanges(bank []bankEntry) error {
	for i, q := range bank {
		if q.Answer >= len(q.Options) {
			return fmt.Errorf("quizBank[%d]: answer index %d out of range for %d options", i, q.Answer, len(q.Options))
		}
	}
	return nil
}

func toBundle(p analyzeResponse) *bundle.StudyBundle {
	script := make([]bundle.TranscriptLine, len(p.Script))
	for i, l := range p.Script {
		script[i] = bundle.TranscriptLine{Time: l.Time, Text: l.Text, Kr: l.Kr}
	}
	vocab := make([]bundle.VocabularyEntry, len(p.Vocabulary))
	for i, v := range p.Vocabulary {
		vocab[i] = bundle.VocabularyEntry{Word: v.Word, Type: v.Type, Meaning: v.Meaning}
	}
	bank := make([]bundle.QuizQuestion, len(p.QuizBank))
	for i, q := range p.QuizBank {
		bank[i] = bundle.QuizQuestion{
			Question:   q.Question,
			Options:    q.Options,
			Answer:     q.Answer,
			Rationale:  q.Rationale,
			Difficulty: q.Difficulty,
		}
	}
	return bundle.New(p.VideoID, p.Title, script, vocab, bank)
}
