// Package chat orchestrates one chat request end to end: fetch document
// context, build the prompt, call the completion provider, extract citations,
// resolve them against the document list. Stateless across requests — all
// conversational memory is the caller-supplied history.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/domain/audit"
	"github.com/dmonterocr/legalia/internal/domain/citation"
	"github.com/dmonterocr/legalia/internal/infra/llm"
	"github.com/dmonterocr/legalia/internal/infra/workspace"
	"github.com/dmonterocr/legalia/pkg/metrics"
)

// ContextFetcher retrieves the caller's document index and document list.
type ContextFetcher interface {
	FetchContext(ctx context.Context, token string) (*workspace.Context, error)
}

// ProviderRouter selects the completion provider for a request.
type ProviderRouter interface {
	Route(ctx context.Context) (llm.Provider, error)
}

// AuditLogger records one event per chat request.
type AuditLogger interface {
	Log(ctx context.Context, event audit.ChatEvent) error
}

// Options are the model parameters for completion calls, injected from
// configuration rather than hard-coded per handler revision.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Service is the conversation orchestrator.
type Service struct {
	workspace ContextFetcher
	providers ProviderRouter
	tmpl      *PromptTemplate
	audit     AuditLogger
	logger    *zap.Logger
	opts      Options
}

// NewService wires the orchestrator. tmpl must be non-nil (use DefaultTemplate
// when no file is configured).
func NewService(w ContextFetcher, p ProviderRouter, tmpl *PromptTemplate, a AuditLogger, logger *zap.Logger, opts Options) *Service {
	return &Service{workspace: w, providers: p, tmpl: tmpl, audit: a, logger: logger, opts: opts}
}

// Input is one inbound chat request.
type Input struct {
	Token     string // raw bearer credential, forwarded to the document service
	UserID    string // from locally parsed claims; may be empty
	Mensaje   string
	Historial []Turn
}

// Output is the successful result of one chat request.
type Output struct {
	Respuesta       string
	Documentos      []citation.Reference // cited documents, first-occurrence order
	TodosDocumentos []citation.Reference // full authoritative list
	Usage           *llm.Usage
}

// Chat runs the pipeline exactly once per stage — no internal retries; the
// caller owns retry policy. Cancelling ctx aborts in-flight upstream calls.
func (s *Service) Chat(ctx context.Context, in Input) (*Output, error) {
	out, err := s.chat(ctx, in)

	outcome := audit.OutcomeSuccess
	event := audit.ChatEvent{UserID: in.UserID, Model: s.opts.Model}
	if err != nil {
		outcome = audit.OutcomeError
		event.ErrorClass = classify(err)
		event.Detail = err.Error()
		metrics.ChatRequestsTotal.WithLabelValues(event.ErrorClass).Inc()
	} else {
		event.Citations = len(out.Documentos)
		if out.Usage != nil {
			event.PromptTokens = out.Usage.PromptTokens
			event.CompletionTokens = out.Usage.CompletionTokens
			event.TotalTokens = out.Usage.TotalTokens
		}
		metrics.ChatRequestsTotal.WithLabelValues("success").Inc()
		metrics.CitationsResolved.Observe(float64(len(out.Documentos)))
	}
	event.Outcome = outcome

	// Audit is observability, not control flow: a failed write is logged and
	// the request proceeds.
	if auditErr := s.audit.Log(ctx, event); auditErr != nil {
		s.logger.Warn("audit write failed", zap.Error(auditErr))
	}

	return out, err
}

func (s *Service) chat(ctx context.Context, in Input) (*Output, error) {
	if strings.TrimSpace(in.Mensaje) == "" {
		return nil, ErrInvalidInput
	}
	if in.Token == "" {
		return nil, ErrMissingCredential
	}

	wctx, err := s.workspace.FetchContext(ctx, in.Token)
	if err != nil {
		if errors.Is(err, workspace.ErrNoDocuments) {
			return nil, ErrNoDocuments
		}
		return nil, fmt.Errorf("%w: %s", ErrContextUnavailable, trimCause(err, workspace.ErrUnavailable))
	}

	messages := s.tmpl.BuildMessages(wctx.Indice, in.Historial, in.Mensaje)

	provider, err := s.providers.Route(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompletionFailed, err)
	}

	started := time.Now()
	resp, err := provider.ChatCompletion(ctx, llm.ChatRequest{
		Model:       s.opts.Model,
		Messages:    messages,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	metrics.RecordCompletion(provider.ModelInfo().Provider, err == nil, time.Since(started))
	if err != nil {
		s.logger.Error("completion call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrCompletionFailed, err)
	}
	if resp.Usage != nil {
		metrics.RecordTokenUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	}

	markers := citation.FindMarkers(resp.Content)
	refs := citation.Resolve(markers, wctx.Documentos)

	s.logger.Info("chat completed",
		zap.Int("history_turns", len(in.Historial)),
		zap.Int("citations", len(refs)),
		zap.String("stop_reason", resp.StopReason),
	)

	return &Output{
		Respuesta:       resp.Content,
		Documentos:      refs,
		TodosDocumentos: citation.Catalog(wctx.Documentos),
		Usage:           resp.Usage,
	}, nil
}

// classify maps a pipeline error to its audit class.
func classify(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrNoDocuments):
		return "no_documents"
	case errors.Is(err, ErrContextUnavailable):
		return "context_unavailable"
	case errors.Is(err, ErrCompletionFailed):
		return "completion_failed"
	default:
		return "unexpected"
	}
}

// trimCause strips the sentinel prefix from err's message so it is not
// repeated when the error is rewrapped under a domain sentinel.
func trimCause(err, sentinel error) string {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, sentinel.Error())
	return strings.TrimPrefix(msg, ": ")
}
