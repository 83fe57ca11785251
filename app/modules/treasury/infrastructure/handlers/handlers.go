package treasuryhandlers

import (
	"log/slog"
	"net/http"

	treasuryservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

// TreasuryHandlers implements the Handlers interface.
type TreasuryHandlers struct {
	service treasuryservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTreasuryHandlers creates a new TreasuryHandlers instance.
func NewTreasuryHandlers(
	service treasuryservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &TreasuryHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleCreateFee handles POST /api/treasury/fees.
func (h *TreasuryHandlers) HandleCreateFee(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TreasuryHandlers.HandleCreateFee")
	defer span.End()
	r = r.WithContext(ctx)

	var req treasuryservice.CreateFeeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	fee, err := h.service.CreateFee(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, fee)
}

// HandleGetCurrentFee handles GET /api/treasury/fees/current. The body is null
// when no fee covers today.
func (h *TreasuryHandlers) HandleGetCurrentFee(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TreasuryHandlers.HandleGetCurrentFee")
	defer span.End()
	r = r.WithContext(ctx)

	fee, err := h.service.GetCurrentFee(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fee)
}

// HandleSubmitPayment handles POST /api/treasury/payments.
func (h *TreasuryHandlers) HandleSubmitPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TreasuryHandlers.HandleSubmitPayment")
	defer span.End()
	r = r.WithContext(ctx)

	var req treasuryservice.SubmitPaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	payment, err := h.service.SubmitPayment(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, payment)
}
