package student

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

func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var dto SendOTPDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	code, err := h.service.RequestOTP(r.Context(), dto.Phone)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	resp := map[string]string{"message": "otp sent"}
	if !config.IsProduction() {
		// Echoed for development only, the same way the legacy backend did.
		resp["otp"] = code
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var dto VerifyOTPDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	login, err := h.service.VerifyOTP(r.Context(), dto.Phone, dto.OTP)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, login)
}

func (h *Handler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
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

	var dto CompleteProfileDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	if err := h.service.CompleteProfile(r.Context(), studentID, dto); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}

func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid student id"))
		return
	}

	st, err := h.service.Get(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, st)
}

func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, students)
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid student id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "student deleted"})
}
