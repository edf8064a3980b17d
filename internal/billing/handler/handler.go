package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caseflow/internal/billing/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/httputil"
	"caseflow/pkg/requestcontext"
)

// Service defines the interface for billing operations.
type Service interface {
	Evaluate(ctx context.Context, clientID id.ClientID) (*models.EligibilityResult, error)
	Summarize(ctx context.Context, clientID id.ClientID) (*models.PaymentSummary, error)
}

// Handler wires billing endpoints to the billing service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a billing handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts billing endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/clients/{clientID}/payment-eligibility", h.HandleEligibility)
	r.Get("/clients/{clientID}/payment-summary", h.HandleSummary)
}

// HandleEligibility handles GET /clients/{clientID}/payment-eligibility.
func (h *Handler) HandleEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	clientID, err := id.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Evaluate(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "eligibility evaluation failed",
			"request_id", requestcontext.RequestID(ctx),
			"client_id", clientID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "eligibility evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"client_id", clientID,
		"eligible", result.Eligible,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleSummary handles GET /clients/{clientID}/payment-summary.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	clientID, err := id.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	summary, err := h.service.Summarize(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "payment summary failed",
			"request_id", requestcontext.RequestID(ctx),
			"client_id", clientID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "payment summary generated",
		"request_id", requestcontext.RequestID(ctx),
		"client_id", clientID,
		"can_create_case", summary.CanCreateCase,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromSummary(summary))
}
