// Package client provides a Go client for the Roger Keys storefront API,
// including a paginated catalog browser for frontend-style consumers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Track is one catalog entry as served by the API.
type Track struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrackPage is the paginated track listing envelope.
type TrackPage struct {
	Tracks      []Track `json:"tracks"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	TotalTracks int     `json:"totalTracks"`
}

// Folder is one sample library folder.
type Folder struct {
	Name      string `json:"name"`
	FileCount int    `json:"fileCount"`
}

// FolderPage is the paginated folder listing envelope.
type FolderPage struct {
	Folders      []Folder `json:"folders"`
	CurrentPage  int      `json:"currentPage"`
	TotalPages   int      `json:"totalPages"`
	TotalFolders int      `json:"totalFolders"`
}

// FilePage is the paginated file listing envelope for one folder.
type FilePage struct {
	Files       []string `json:"files"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	TotalFiles  int      `json:"totalFiles"`
}

// SubscribeResult reports the outcome of a subscribe call.
type SubscribeResult struct {
	Message string `json:"message"`
	// Created is true when the email was newly stored, false when it was
	// already subscribed.
	Created bool `json:"-"`
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// API is an HTTP client for the storefront backend.
type API struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures an API client.
type Option func(*API)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *API) { a.httpClient = c }
}

// NewAPI creates a client for the given base URL (e.g. http://localhost:5055).
func NewAPI(baseURL string, opts ...Option) *API {
	api := &API{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// ListTracks fetches one page of the track catalog.
func (a *API) ListTracks(ctx context.Context, page, limit int) (*TrackPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var envelope TrackPage
	if err := a.getJSON(ctx, "/api/tracks", q, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// Subscribe registers an email address for the mailing list. A duplicate
// email is not an error; Created reports whether it was newly stored.
func (a *API) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	body, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/subscribe", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var result SubscribeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	result.Created = resp.StatusCode == http.StatusCreated
	return &result, nil
}

// ListFolders fetches one page of the local sample library folders.
func (a *API) ListFolders(ctx context.Context, page, limit int) (*FolderPage, error) {
	q := url.Values{"mode": {"folders"}}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var envelope FolderPage
	if err := a.getJSON(ctx, "/api/local-files", q, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// ListFiles fetches one page of matching files inside a library folder.
func (a *API) ListFiles(ctx context.Context, folderName string, page, limit int) (*FilePage, error) {
	q := url.Values{"mode": {"files"}, "folderName": {folderName}}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var envelope FilePage
	if err := a.getJSON(ctx, "/api/local-files", q, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

func (a *API) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := a.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		} else {
			apiErr.Message = strings.TrimSpace(string(body))
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
