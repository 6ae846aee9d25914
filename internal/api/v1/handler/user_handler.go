package handler

import (
	"net/http"

	"genmoney/internal/api/v1/dto"
	"genmoney/internal/middleware"
	"genmoney/internal/model"
	"genmoney/internal/service"

	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// RegisterRoutes mounts user routes behind the auth middleware
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/user/dashboard", authMw(http.HandlerFunc(h.getDashboard)))
}

func (h *UserHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	dashboard, err := h.userService.Dashboard(r.Context(), user)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", user.ID).Msg("Failed to build dashboard")
		writeDetail(w, http.StatusInternalServerError, "Failed to retrieve dashboard")
		return
	}

	resp := dto.DashboardResponse{
		User:            dashboard.User,
		EnrolledCourses: dashboard.EnrolledCourses,
		PaymentHistory:  dashboard.PaymentHistory,
		Badges:          dashboard.Badges,
		TotalSpent:      dashboard.TotalSpent,
	}
	if resp.EnrolledCourses == nil {
		resp.EnrolledCourses = []model.Course{}
	}
	if resp.PaymentHistory == nil {
		resp.PaymentHistory = []model.Payment{}
	}
	writeJSON(w, http.StatusOK, resp)
}
