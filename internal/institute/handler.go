package institute

import (
	"net/http"

	"github.com/careerclarity/careerclarity-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var dto RequestOTPDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	code, err := h.service.RequestOTP(r.Context(), dto.Name, dto.Phone)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	resp := map[string]string{"message": "otp sent"}
	if !config.IsProduction() {
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

func (h *Handler) ListInstitutes(w http.ResponseWriter, r *http.Request) {
	institutes, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, institutes)
}
