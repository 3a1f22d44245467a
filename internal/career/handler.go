package career

import (
	"net/http"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/auth"
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	careers, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, careers)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid career id"))
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) Recommended(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Unauthorized, "authentication required"))
		return
	}
	studentID, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Unauthorized, "invalid principal id"))
		return
	}

	rec, err := h.service.Recommended(r.Context(), studentID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, rec)
}

func (h *Handler) Colleges(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid career id"))
		return
	}

	resp, err := h.service.Colleges(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateCareerDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	c, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid career id"))
		return
	}

	var dto UpdateCareerDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	c, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid career id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "career deleted"})
}
