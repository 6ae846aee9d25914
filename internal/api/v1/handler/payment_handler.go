package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"genmoney/internal/api/v1/dto"
	"genmoney/internal/middleware"
	"genmoney/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewPaymentHandler(paymentService service.PaymentService, v *validator.Validate, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validate: v, logger: logger}
}

// RegisterRoutes mounts payment routes behind the auth middleware
func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/payments/purchase", authMw(http.HandlerFunc(h.purchase)))
}

func (h *PaymentHandler) purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// 1. Resolve authenticated user from context
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// 2. Decode and validate request body
	var req dto.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	// 3. Run the purchase flow
	result, err := h.paymentService.Purchase(r.Context(), user, req.CourseID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			writeDetail(w, http.StatusNotFound, "Course not found")
		case errors.Is(err, service.ErrAlreadyEnrolled):
			writeDetail(w, http.StatusBadRequest, "Already enrolled in this course")
		default:
			h.logger.Error().Err(err).Str("course_id", req.CourseID).Msg("Purchase failed")
			writeDetail(w, http.StatusInternalServerError, "Failed to complete purchase")
		}
		return
	}

	// 4. Return confirmation payload
	writeJSON(w, http.StatusOK, dto.PurchaseResponse{
		Message:     "Course purchased successfully!",
		PaymentID:   result.PaymentID,
		CourseTitle: result.CourseTitle,
	})
}
