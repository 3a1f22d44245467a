package notification

import (
	"net/http"
	"strconv"

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

// actorFromRequest resolves the caller. Admins come back as uuid.Nil so
// downstream ownership checks are skipped.
func actorFromRequest(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, apperror.New(apperror.Unauthorized, "authentication required")
	}
	if claims.Role == auth.RoleAdmin {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperror.New(apperror.Unauthorized, "invalid principal id")
	}
	return id, nil
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil || actor == uuid.Nil {
		config.Error(w, r, apperror.New(apperror.Unauthorized, "authentication required"))
		return
	}

	list, err := h.service.ListForStudent(r.Context(), actor)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, list)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid notification id"))
		return
	}

	if err := h.service.MarkRead(r.Context(), actor, id); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "notification marked read"})
}

func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil || actor == uuid.Nil {
		config.Error(w, r, apperror.New(apperror.Unauthorized, "authentication required"))
		return
	}

	if err := h.service.MarkAllRead(r.Context(), actor); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "all notifications marked read"})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateNotificationDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	n, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, n)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	resp, err := h.service.ListAll(r.Context(), ListQuery{Page: page, PageSize: size})
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}
