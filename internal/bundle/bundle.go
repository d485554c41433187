package bundle

import (
	"fmt"
	"regexp"
	"sort"
)

// Difficulty tags a quiz bank question. The analysis collaborator emits
// exactly the three values below. An alias rather than a defined type so
// raw strings off the wire assign without conversion.
type Difficulty = string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// thumbnailTemplate builds a thumbnail URL from a video ID. No request is
// issued here; the string is handed to whatever renders it.
const thumbnailTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"

// TranscriptLine is one timed line of the study script.
type TranscriptLine struct {
	Time float64 // seconds from video start
	Text string  // source-language sentence
	Kr   string  // translation
}

// VocabularyEntry is one word surfaced by the analysis. Identity is the
// surface form: two entries with the same Word are the same entry.
type VocabularyEntry struct {
	Word    string
	Type    string // part-of-speech tag
	Meaning string
}

// QuizQuestion is one bank entry as returned by the collaborator.
// Never mutated after the bundle is built.
type QuizQuestion struct {
	Question   string
	Options    []string
	Answer     int // index into Options
	Rationale  string
	Difficulty Difficulty
}

// StudyBundle is the per-video artifact returned by analysis: transcript,
// vocabulary and quiz bank. Immutable once built; a new submission replaces
// it wholesale.
type StudyBundle struct {
	VideoID      string
	Title        string
	ThumbnailURL string
	Script       []TranscriptLine
	Vocabulary   []VocabularyEntry
	QuizBank     []QuizQuestion
}

// New assembles a StudyBundle, deriving the thumbnail URL and restoring the
// transcript ordering invariant (lines sorted by non-decreasing timestamp).
func New(videoID, title string, script []TranscriptLine, vocab []VocabularyEntry, bank []QuizQuestion) *StudyBundle {
	sort.SliceStable(script, func(i, j int) bool {
		return script[i].Time < script[j].Time
	})
	return &StudyBundle{
		VideoID:      videoID,
		Title:        title,
		ThumbnailURL: ThumbnailURL(videoID),
		Script:       script,
		Vocabulary:   vocab,
		QuizBank:     bank,
	}
}

// Duration returns the timestamp of the last transcript line, used as the
// playback clock's upper bound. Zero for an empty script.
func (b *StudyBundle) Duration() float64 {
	if len(b.Script) == 0 {
		return 0
	}
	return b.Script[len(b.Script)-1].Time
}

// ThumbnailURL derives the thumbnail locator for a video ID.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(thumbnailTemplate, videoID)
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID pulls the 11-character video ID out of a watch URL.
// Returns "" when the URL matches neither the long nor the short form,
// letting callers reject bad input before a network round trip.
func ExtractVideoID(url string) string {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
