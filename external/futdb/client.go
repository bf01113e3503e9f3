package futdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/futdb-sync/internal/domain/club"
	"github.com/riskibarqy/futdb-sync/internal/domain/endpoint"
	"github.com/riskibarqy/futdb-sync/internal/domain/nation"
	"github.com/riskibarqy/futdb-sync/internal/domain/player"
	"github.com/riskibarqy/futdb-sync/internal/platform/logging"
	"github.com/riskibarqy/futdb-sync/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL   = "https://futdb.app/api"
	authTokenHeader  = "X-AUTH-TOKEN"
	maxResponseBytes = 16 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	// Timeout applies only when HTTPClient is nil. Zero means no timeout.
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client talks to the FUT database API. Requests are issued one at a time
// by the caller; the client itself keeps no state between them.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxBody    int64
	logger     *logging.Logger
}

// StatusError is a non-2xx API response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider status=%d body=%s", e.StatusCode, e.Body)
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		maxBody:    maxResponseBytes,
		logger:     logger,
	}
}

func (c *Client) FetchPageMeta(ctx context.Context, kind endpoint.Kind) (usecase.PageMeta, error) {
	raw, err := c.Fetch(ctx, kind.String(), 0)
	if err != nil {
		return usecase.PageMeta{}, fmt.Errorf("fetch %s metadata: %w", kind, err)
	}
	meta, err := DecodeMeta(raw)
	if err != nil {
		return usecase.PageMeta{}, fmt.Errorf("decode %s metadata: %w", kind, err)
	}
	return meta, nil
}

func (c *Client) FetchNations(ctx context.Context, page int) ([]nation.Nation, error) {
	return fetchPage(ctx, c, endpoint.KindNation, page, DecodeNations)
}

func (c *Client) FetchClubs(ctx context.Context, page int) ([]club.Club, error) {
	return fetchPage(ctx, c, endpoint.KindClub, page, DecodeClubs)
}

func (c *Client) FetchPlayers(ctx context.Context, page int) ([]player.Player, error) {
	return fetchPage(ctx, c, endpoint.KindPlayer, page, DecodePlayers)
}

func fetchPage[T any](ctx context.Context, c *Client, kind endpoint.Kind, page int, decode func([]byte) ([]T, error)) ([]T, error) {
	if page <= 0 {
		return nil, fmt.Errorf("page must be greater than zero, got %d", page)
	}
	raw, err := c.Fetch(ctx, kind.String(), page)
	if err != nil {
		return nil, fmt.Errorf("fetch %s page=%d: %w", kind, page, err)
	}
	items, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s page=%d: %w", kind, page, err)
	}
	return items, nil
}

// Fetch performs GET {base}/{name} and returns the raw body. page <= 0
// sends no page parameter. Every failure is marked usecase.ErrNetwork.
func (c *Client) Fetch(ctx context.Context, name string, page int) ([]byte, error) {
	fullURL := c.baseURL + "/" + url.PathEscape(name)
	if page > 0 {
		values := url.Values{}
		values.Set("page", strconv.Itoa(page))
		fullURL += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", usecase.ErrNetwork, err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(authTokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "futdb request failed", "url", fullURL, "error", sanitizeSensitiveText(err.Error(), c.token))
		return nil, fmt.Errorf("%w: send request: %s", usecase.ErrNetwork, sanitizeSensitiveText(err.Error(), c.token))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", usecase.ErrNetwork, err)
	}
	if int64(len(raw)) > c.maxBody {
		return nil, fmt.Errorf("%w: response too large: more than %d bytes", usecase.ErrNetwork, c.maxBody)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
		c.logger.WarnContext(ctx, "futdb request rejected", "url", fullURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %w", usecase.ErrNetwork, statusErr)
	}

	return raw, nil
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
