// Route registration and go-chi router setup. Public routes (/health,
// /metrics) vs bearer-protected routes (/api/v1/*).
package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/api/handlers"
	apmiddleware "github.com/dmonterocr/legalia/internal/api/middleware"
	domainaudit "github.com/dmonterocr/legalia/internal/domain/audit"
	"github.com/dmonterocr/legalia/internal/domain/chat"
	"github.com/dmonterocr/legalia/internal/infra/config"
	"github.com/dmonterocr/legalia/internal/infra/llm"
	"github.com/dmonterocr/legalia/internal/infra/workspace"
)

// NewRouter creates and configures a chi router with all routes wired.
func NewRouter(db *sql.DB, cfg config.Config, tmpl *chat.PromptTemplate, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apmiddleware.Metrics)

	// ===== PUBLIC ROUTES (no auth required) =====

	// Health check — unauthenticated, used by load balancers and health probes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	r.Handle("/metrics", promhttp.Handler())

	// ===== PROTECTED ROUTES (bearer credential required) =====

	auditService := domainaudit.NewService(db)

	providers := map[string]llm.Provider{
		"openai": llm.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel),
		"ollama": llm.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel),
	}
	router := llm.NewRouter(providers, cfg.LLMProvider)

	chatService := chat.NewService(
		workspace.NewClient(cfg.DocsBaseURL, logger),
		router,
		tmpl,
		auditService,
		logger,
		chat.Options{
			Model:       modelFor(cfg),
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
		},
	)

	chatHandler := handlers.NewChatHandler(chatService, logger)
	auditHandler := handlers.NewAuditHandler(auditService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apmiddleware.Auth([]byte(cfg.JWTSecret), logger))

		r.Post("/chat", chatHandler.Chat)           // POST /api/v1/chat
		r.Get("/audit/recent", auditHandler.Recent) // GET /api/v1/audit/recent
	})

	return r
}

// modelFor returns the configured model name for the selected provider.
func modelFor(cfg config.Config) string {
	if cfg.LLMProvider == "ollama" {
		return cfg.OllamaModel
	}
	return cfg.OpenAIModel
}
