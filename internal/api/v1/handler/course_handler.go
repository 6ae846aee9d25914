package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"genmoney/internal/api/v1/dto"
	"genmoney/internal/middleware"
	"genmoney/internal/model"
	"genmoney/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles catalog endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts catalog routes. Listing and single lookup are
// public; creation requires an authenticated admin.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	createCourse := authMw(middleware.RequireAdmin(http.HandlerFunc(h.createCourse)))
	mux.Handle("/courses", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.listCourses(w, r)
		case http.MethodPost:
			createCourse.ServeHTTP(w, r)
		default:
			writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}))
	mux.Handle("/courses/", http.HandlerFunc(h.getCourse))
	mux.Handle("/categories", http.HandlerFunc(h.getCategories))
}

// listCourses godoc
// @Summary List courses
// @Description Lists all courses, optionally filtered by category and level.
// @Tags courses
// @Produce json
// @Param category query string false "Category filter"
// @Param level query string false "Level filter"
// @Success 200 {array} model.Course
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	level := r.URL.Query().Get("level")

	courses, err := h.courseService.List(r.Context(), category, level)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		writeDetail(w, http.StatusInternalServerError, "Failed to retrieve courses")
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	courseID := strings.TrimPrefix(r.URL.Path, "/courses/")

	course, err := h.courseService.Get(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			writeDetail(w, http.StatusNotFound, "Course not found")
			return
		}
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to retrieve course")
		writeDetail(w, http.StatusInternalServerError, "Failed to retrieve course")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// createCourse godoc
// @Summary Create a course
// @Description Creates a new course. Admin only.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateRequest true "Course creation request"
// @Success 200 {object} model.Course
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	topics := req.Topics
	if topics == nil {
		topics = []string{}
	}
	course := &model.Course{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		Level:           req.Level,
		MentorName:      req.MentorName,
		VideoURL:        req.VideoURL,
		PreviewVideoURL: req.PreviewVideoURL,
		Duration:        req.Duration,
		Topics:          topics,
	}

	created, err := h.courseService.Create(r.Context(), course)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create course")
		writeDetail(w, http.StatusInternalServerError, "Failed to create course")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *CourseHandler) getCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, dto.CategoriesResponse{Categories: categories()})
}

// categories returns the static category list shown on the landing page.
func categories() []dto.Category {
	return []dto.Category{
		{
			ID:          model.CategoryPersonalFinance,
			Name:        "Personal Finance",
			Description: "Atur keuangan pribadi dengan smart",
			Icon:        "💰",
			Color:       "bg-emerald-500",
		},
		{
			ID:          model.CategoryStocks,
			Name:        "Saham & Investasi",
			Description: "Mulai investasi saham dari nol",
			Icon:        "📈",
			Color:       "bg-blue-500",
		},
		{
			ID:          model.CategoryCrypto,
			Name:        "Crypto & Blockchain",
			Description: "Pahami dunia crypto dengan aman",
			Icon:        "₿",
			Color:       "bg-orange-500",
		},
		{
			ID:          model.CategoryMutualFunds,
			Name:        "Reksa Dana",
			Description: "Investasi mudah untuk pemula",
			Icon:        "🏦",
			Color:       "bg-purple-500",
		},
	}
}
