// Package workspace is the HTTP client for the external document-management
// service. Per request it fetches the caller's pre-rendered document index and
// the authoritative document list; the index is consumed verbatim as prompt
// context, never parsed.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/domain/citation"
	"github.com/dmonterocr/legalia/pkg/metrics"
)

const (
	// DefaultBaseURL points at a local document service instance.
	DefaultBaseURL = "http://localhost:8000"

	// contextPath is the document service's context endpoint.
	contextPath = "/api/documentos/contexto/"

	// fetchTimeout bounds the context fetch. The upstream renders the index on
	// demand, so this is deliberately generous; everything past it is treated
	// as unavailability.
	fetchTimeout = 20 * time.Second
)

var (
	// ErrUnavailable covers every way the context fetch can fail: network
	// error, timeout, non-success status, malformed payload, or an explicit
	// success=false in the body. The caller may retry.
	ErrUnavailable = errors.New("servicio de documentos no disponible")

	// ErrNoDocuments means the service answered but the caller has no indexed
	// documents yet. Distinct from ErrUnavailable so the client can prompt an
	// upload instead of a retry.
	ErrNoDocuments = errors.New("no hay documentos indexados")
)

// Context is the per-request document context for one caller.
type Context struct {
	Indice     string
	Documentos []citation.Document
}

// Client fetches document context from the external service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client for the given base URL ("" uses DefaultBaseURL).
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: fetchTimeout},
		logger:     logger,
	}
}

// contextPayload is the wire format of the context endpoint.
type contextPayload struct {
	Success    bool                `json:"success"`
	Indice     string              `json:"indice"`
	Documentos []citation.Document `json:"documentos"`
	Error      string              `json:"error"`
}

// FetchContext retrieves the caller's index text and document list, forwarding
// the bearer credential. One attempt per call; retry policy belongs to the
// caller of the chat endpoint.
func (c *Client) FetchContext(ctx context.Context, token string) (*Context, error) {
	started := time.Now()
	out, err := c.fetchContext(ctx, token)
	metrics.RecordContextFetch(err == nil, time.Since(started))
	return out, err
}

func (c *Client) fetchContext(ctx context.Context, token string) (*Context, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contextPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %s", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("context fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("context fetch returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var payload contextPayload
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("%w: respuesta malformada: %s", ErrUnavailable, decodeErr)
	}
	if !payload.Success {
		c.logger.Warn("context fetch reported failure", zap.String("upstream_error", payload.Error))
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, payload.Error)
	}
	if len(payload.Documentos) == 0 {
		return nil, ErrNoDocuments
	}

	return &Context{Indice: payload.Indice, Documentos: payload.Documentos}, nil
}
