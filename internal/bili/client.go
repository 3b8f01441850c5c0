// Package bili wraps the Bilibili web API surface the pipeline needs: view
// metadata, the per-part subtitle catalog, and subtitle track bodies.
package bili

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"biliscribe/internal/subtitle"
	"biliscribe/internal/transcript"
)

const (
	defaultBaseURL     = "https://api.bilibili.com"
	defaultUserAgent   = "Mozilla/5.0"
	defaultHTTPTimeout = 30 * time.Second
)

// Config captures the runtime settings required to talk to the Bilibili API.
type Config struct {
	BaseURL        string
	UserAgent      string
	TimeoutSeconds int
}

// Client issues the metadata and subtitle lookups for one video.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			BaseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			UserAgent:      strings.TrimSpace(cfg.UserAgent),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.cfg.UserAgent == "" {
		client.cfg.UserAgent = defaultUserAgent
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// Page is one playable part of a multi-part video.
type Page struct {
	CID  int64
	Part string
}

// VideoView is the resolved metadata for a video. Immutable once returned.
type VideoView struct {
	BVID       string
	Title      string
	Owner      string
	DefaultCID int64
	Pages      []Page
}

type viewResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Title string `json:"title"`
		Owner struct {
			Name string `json:"name"`
		} `json:"owner"`
		CID   int64 `json:"cid"`
		Pages []struct {
			CID  int64  `json:"cid"`
			Part string `json:"part"`
		} `json:"pages"`
	} `json:"data"`
}

// View fetches title, owner, and the ordered part list for a video.
func (c *Client) View(ctx context.Context, bvid string) (VideoView, error) {
	var view VideoView
	if strings.TrimSpace(bvid) == "" {
		return view, fmt.Errorf("bili view: bvid required")
	}
	endpoint := fmt.Sprintf("%s/x/web-interface/view?bvid=%s", c.cfg.BaseURL, url.QueryEscape(bvid))

	var decoded viewResponse
	if err := c.getJSON(ctx, endpoint, &decoded); err != nil {
		return view, fmt.Errorf("bili view: %w", err)
	}
	if decoded.Code != 0 {
		return view, fmt.Errorf("bili view: api code %d: %s", decoded.Code, strings.TrimSpace(decoded.Message))
	}

	view.BVID = bvid
	view.Title = decoded.Data.Title
	view.Owner = decoded.Data.Owner.Name
	view.DefaultCID = decoded.Data.CID
	for _, page := range decoded.Data.Pages {
		view.Pages = append(view.Pages, Page{CID: page.CID, Part: page.Part})
	}
	return view, nil
}

// ResolveCID maps a requested part index to a content id. An empty part list
// falls back to the view's top-level cid (single-part video); otherwise the
// index is clamped into range rather than rejected. ok is false only when no
// content id can be determined at all.
func ResolveCID(view VideoView, page int) (int64, bool) {
	if len(view.Pages) == 0 {
		return view.DefaultCID, view.DefaultCID != 0
	}
	if page < 0 {
		page = 0
	}
	if page > len(view.Pages)-1 {
		page = len(view.Pages) - 1
	}
	cid := view.Pages[page].CID
	return cid, cid != 0
}

type playerResponse struct {
	Code int `json:"code"`
	Data struct {
		Subtitle struct {
			Subtitles []struct {
				Lan         string `json:"lan"`
				LanDoc      string `json:"lan_doc"`
				SubtitleURL string `json:"subtitle_url"`
			} `json:"subtitles"`
		} `json:"subtitle"`
	} `json:"data"`
}

// SubtitleCatalog lists the published subtitle tracks for one part. An empty
// catalog is not an error; it signals the audio fallback.
func (c *Client) SubtitleCatalog(ctx context.Context, bvid string, cid int64) ([]subtitle.Track, error) {
	endpoint := fmt.Sprintf("%s/x/player/v2?cid=%d&bvid=%s", c.cfg.BaseURL, cid, url.QueryEscape(bvid))

	var decoded playerResponse
	if err := c.getJSON(ctx, endpoint, &decoded); err != nil {
		return nil, fmt.Errorf("bili subtitle catalog: %w", err)
	}

	tracks := make([]subtitle.Track, 0, len(decoded.Data.Subtitle.Subtitles))
	for _, entry := range decoded.Data.Subtitle.Subtitles {
		tracks = append(tracks, subtitle.Track{
			Lan:    entry.Lan,
			LanDoc: entry.LanDoc,
			URL:    normalizeTrackURL(entry.SubtitleURL),
		})
	}
	return tracks, nil
}

// SubtitleBody fetches and decodes one track's cue list.
func (c *Client) SubtitleBody(ctx context.Context, trackURL string) (transcript.SubtitleBody, error) {
	var body transcript.SubtitleBody
	if strings.TrimSpace(trackURL) == "" {
		return body, fmt.Errorf("bili subtitle body: url required")
	}
	if err := c.getJSON(ctx, normalizeTrackURL(trackURL), &body); err != nil {
		return body, fmt.Errorf("bili subtitle body: %w", err)
	}
	return body, nil
}

// The player API hands out protocol-relative subtitle URLs.
func normalizeTrackURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
