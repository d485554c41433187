package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild      = errors.New("cannot check a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
)

const (
	defaultOwner   = "Okyu59"
	defaultRepo    = "TubeLingo"
	defaultAPIBase = "https://api.github.com"
	defaultTimeout = 30 * time.Second
)

// Checker queries GitHub releases for a newer published version.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

type Option func(*Checker)

func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.client.Timeout = d
	}
}

// WithAPIBaseURL overrides the GitHub API endpoint, for tests.
func WithAPIBaseURL(u string) Option {
	return func(c *Checker) {
		c.apiBaseURL = strings.TrimRight(u, "/")
	}
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:      defaultOwner,
		repo:       defaultRepo,
		apiBaseURL: defaultAPIBase,
		client:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CheckInput struct {
	// Version is the running build's version, e.g. "v1.2.0". "(devel)"
	// builds cannot be compared and yield ErrDevBuild.
	Version string
}

type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

type releaseResponse struct {
	TagName    string `json:"tag_name"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

// Check fetches the latest release tag and compares it to the running
// version with semver precedence.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	current := normalize(input.Version)
	if current == "" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var release releaseResponse
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := normalize(release.TagName)
	if latest == "" {
		return nil, fmt.Errorf("latest release has invalid tag %q", release.TagName)
	}

	return &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   latest,
		UpdateAvailable: semver.Compare(latest, current) > 0,
	}, nil
}

// normalize returns a canonical "vX.Y.Z" form, or "" when the input is not
// a valid semantic version.
func normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "(devel)" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
