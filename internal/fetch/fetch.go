// Package fetch downloads the template repository into a staging directory.
package fetch

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// TemplateRepo is the GitHub repository every project is created from.
const TemplateRepo = "eoinmcg/js13k-littlejs-starter"

// DefaultBaseURL serves GitHub repository tarballs.
const DefaultBaseURL = "https://codeload.github.com"

const userAgent = "create-littlejs"

// Fetcher populates dest with the template tree. dest must already exist.
type Fetcher interface {
	Source() string
	Fetch(ctx context.Context, dest string) error
}

// FetchError reports a failed template download or extraction.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf(messages.FetchErrorFmt, e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// GitHubTarball fetches the HEAD tarball of a GitHub repository and extracts it
// with the archive's top-level directory stripped.
type GitHubTarball struct {
	Repo    string
	BaseURL string
	Client  *http.Client
	// Progress receives human-readable progress lines. It may be nil.
	Progress func(string)
}

// NewGitHubTarball returns a fetcher for repo using the public codeload endpoint.
// The client has no timeout; cancellation comes from the context.
func NewGitHubTarball(repo string) *GitHubTarball {
	return &GitHubTarball{
		Repo:    repo,
		BaseURL: DefaultBaseURL,
		Client:  &http.Client{},
	}
}

// Source identifies the template for messages.
func (f *GitHubTarball) Source() string {
	return "github.com/" + f.Repo
}

// URL returns the tarball URL for the repository's default branch.
func (f *GitHubTarball) URL() string {
	return fmt.Sprintf("%s/%s/tar.gz/HEAD", f.BaseURL, f.Repo)
}

// Fetch downloads and extracts the template into dest. Any failure is a *FetchError.
func (f *GitHubTarball) Fetch(ctx context.Context, dest string) error {
	if err := f.fetch(ctx, dest); err != nil {
		return &FetchError{Source: f.Source(), Err: err}
	}
	return nil
}

func (f *GitHubTarball) fetch(ctx context.Context, dest string) error {
	if dest == "" {
		return errors.New(messages.FetchDestinationRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	url := f.URL()
	f.progress(fmt.Sprintf(messages.FetchDownloadingFmt, url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf(messages.FetchCreateRequestFmt, err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req) //nolint:gosec // URL is built from the fixed template repository
	if err != nil {
		return fmt.Errorf(messages.FetchRequestFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf(messages.FetchNotFoundFmt, url)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(messages.FetchUnexpectedStatusFmt, url, resp.Status)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf(messages.FetchGzipFmt, err)
	}
	defer func() { _ = gz.Close() }()

	count, err := extract(tar.NewReader(gz), dest, f.progress)
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New(messages.FetchEmptyArchive)
	}
	f.progress(fmt.Sprintf(messages.FetchExtractedFmt, count, f.Source()))
	return nil
}

func (f *GitHubTarball) progress(line string) {
	if f.Progress != nil {
		f.Progress(line)
	}
}
