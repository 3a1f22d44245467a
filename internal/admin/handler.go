package admin

import (
	"net/http"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	login, err := h.service.Login(r.Context(), dto.Username, dto.Password)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, login)
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Overview(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) StudentDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid student id"))
		return
	}

	detail, err := h.service.StudentDetail(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, detail)
}
