package college

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

func studentFromRequest(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, apperror.New(apperror.Unauthorized, "authentication required")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperror.New(apperror.Unauthorized, "invalid principal id")
	}
	return id, nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, colleges)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid college id"))
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) Shortlist(w http.ResponseWriter, r *http.Request) {
	studentID, err := studentFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	var dto ShortlistDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}
	collegeID, err := uuid.Parse(dto.CollegeID)
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid college id"))
		return
	}

	if err := h.service.Shortlist(r.Context(), studentID, collegeID); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "college shortlisted"})
}

func (h *Handler) RemoveShortlist(w http.ResponseWriter, r *http.Request) {
	studentID, err := studentFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	collegeID, err := uuid.Parse(chi.URLParam(r, "collegeId"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid college id"))
		return
	}

	if err := h.service.RemoveShortlist(r.Context(), studentID, collegeID); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "college removed from shortlist"})
}

func (h *Handler) ListShortlisted(w http.ResponseWriter, r *http.Request) {
	studentID, err := studentFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	colleges, err := h.service.ListShortlisted(r.Context(), studentID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, colleges)
}

func (h *Handler) ShortlistStatus(w http.ResponseWriter, r *http.Request) {
	studentID, err := studentFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	collegeID, err := uuid.Parse(chi.URLParam(r, "collegeId"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid college id"))
		return
	}

	shortlisted, err := h.service.IsShortlisted(r.Context(), studentID, collegeID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ShortlistStatusResponse{Shortlisted: shortlisted})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateCollegeDTO
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
		config.Error(w, r, apperror.New(apperror.Validation, "invalid college id"))
		return
	}

	var dto UpdateCollegeDTO
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
		config.Error(w, r, apperror.New(apperror.Validation, "invalid college id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "college deleted"})
}
