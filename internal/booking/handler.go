package booking

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

func (h *Handler) ListCounselors(w http.ResponseWriter, r *http.Request) {
	counselors, err := h.service.ListCounselors(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, counselors)
}

func (h *Handler) OpenSlots(w http.ResponseWriter, r *http.Request) {
	var counselorID *uuid.UUID
	if raw := r.URL.Query().Get("counselor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			config.Error(w, r, apperror.New(apperror.Validation, "invalid counselor id"))
			return
		}
		counselorID = &id
	}

	slots, err := h.service.OpenSlots(r.Context(), counselorID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, slots)
}

func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	studentID, err := studentFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	var dto BookSlotDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}
	slotID, err := uuid.Parse(dto.SlotID)
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid slot id"))
		return
	}

	b, err := h.service.Book(r.Context(), studentID, slotID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, b)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	studentID, err := studentFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid booking id"))
		return
	}

	if err := h.service.Cancel(r.Context(), studentID, bookingID); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "booking cancelled"})
}

func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	studentID, err := studentFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	rows, err := h.service.MyBookings(r.Context(), studentID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) CreateCounselor(w http.ResponseWriter, r *http.Request) {
	var dto CreateCounselorDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	c, err := h.service.CreateCounselor(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) UpdateCounselor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid counselor id"))
		return
	}

	var dto UpdateCounselorDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	c, err := h.service.UpdateCounselor(r.Context(), id, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteCounselor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid counselor id"))
		return
	}

	if err := h.service.DeleteCounselor(r.Context(), id); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "counselor deleted"})
}

func (h *Handler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var dto CreateSlotDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, slot)
}
