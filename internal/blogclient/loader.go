// Package blogclient is the consumer-side loader for the blog JSON feed. It is
// the in-process analogue of the site's browser hook: one fetch per loader,
// a tri-state result, no retries and no sharing between instances.
package blogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/workout-generator-web/internal/models"
)

// Status is the loader's lifecycle state. Using a single status field instead
// of independent loading/error flags makes impossible combinations
// unrepresentable.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

// ErrFetchFailed is the fixed error reported when the feed endpoint answers
// with a non-OK status.
var ErrFetchFailed = errors.New("Failed to fetch blog posts")

// FetchState is the tri-state result exposed to consumers. Posts is only
// populated when Status is StatusLoaded; Err only when StatusFailed.
type FetchState struct {
	Status Status
	Posts  []models.Post
	Err    error
}

// Loader fetches the post collection once. Each consumer creates its own
// Loader; instances share nothing.
type Loader struct {
	baseURL    string
	httpClient *http.Client
	state      FetchState
	done       bool
}

// NewLoader creates a Loader targeting {baseURL}/api/blog. A nil client falls
// back to http.DefaultClient.
func NewLoader(baseURL string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		baseURL:    baseURL,
		httpClient: client,
		state:      FetchState{Status: StatusLoading},
	}
}

// State returns the current fetch state. Before Load completes it reports
// StatusLoading with no posts and no error.
func (l *Loader) State() FetchState {
	return l.state
}

// Load performs the single fetch attempt and returns the terminal state. A
// second call returns the first call's result without fetching again. When ctx
// is cancelled mid-flight the loader lands in StatusFailed with the context's
// error, mirroring an unmounted consumer.
func (l *Loader) Load(ctx context.Context) FetchState {
	if l.done {
		return l.state
	}
	l.done = true

	posts, err := l.fetch(ctx)
	if err != nil {
		l.state = FetchState{Status: StatusFailed, Err: err}
	} else {
		l.state = FetchState{Status: StatusLoaded, Posts: posts}
	}
	return l.state
}

func (l *Loader) fetch(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/api/blog", nil)
	if err != nil {
		return nil, fmt.Errorf("creating feed request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, ErrFetchFailed
	}

	var posts []models.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, err
	}
	return posts, nil
}
