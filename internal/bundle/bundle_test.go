package bundle

import "testing"

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"not a url", ""},
		{"https://example.com/watch?v=short", ""},
	}

	for _, c := range cases {
		if got := ExtractVideoID(c.url); got != c.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestThumbnailURL(t *testing.T) {
	got := ThumbnailURL("dQw4w9WgXcQ")
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
	if got != want {
		t.Errorf("ThumbnailURL = %q, want %q", got, want)
	}
}

func TestNew_SortsScript(t *testing.T) {
	script := []TranscriptLine{
		{Time: 10, Text: "second"},
		{Time: 0, Text: "first"},
		{Time: 25, Text: "third"},
	}
	b := New("dQw4w9WgXcQ", "Test", script, nil, nil)

	for i := 1; i < len(b.Script); i++ {
		if b.Script[i].Time < b.Script[i-1].Time {
			t.Fatalf("script not sorted at index %d: %v", i, b.Script)
		}
	}
	if b.Duration() != 25 {
		t.Errorf("Duration = %v, want 25", b.Duration())
	}
	if b.ThumbnailURL == "" {
		t.Error("expected thumbnail URL to be derived")
	}
}

func TestDuration_EmptyScript(t *testing.T) {
	b := New("dQw4w9WgXcQ", "Test", nil, nil, nil)
	if b.Duration() != 0 {
		t.Errorf("Duration = %v, want 0 for empty script", b.Duration())
	}
}
