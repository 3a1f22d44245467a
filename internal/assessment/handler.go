package assessment

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

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil || actor == uuid.Nil {
		config.Error(w, r, apperror.New(apperror.Unauthorized, "authentication required"))
		return
	}

	state, err := h.service.StartOrResume(r.Context(), actor)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, state)
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid session id"))
		return
	}

	resp, err := h.service.NextQuestion(r.Context(), actor, sessionID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	var dto SubmitAnswerDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), actor, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) AdvanceStage(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	var dto AdvanceStageDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}
	sessionID, err := uuid.Parse(dto.SessionID)
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid session id"))
		return
	}

	resp, err := h.service.AdvanceStage(r.Context(), actor, sessionID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) MyResults(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil || actor == uuid.Nil {
		config.Error(w, r, apperror.New(apperror.Unauthorized, "authentication required"))
		return
	}

	rows, err := h.service.Results(r.Context(), actor)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) StudentResults(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid student id"))
		return
	}

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Unauthorized, "authentication required"))
		return
	}
	if !auth.CanAccessStudent(claims, studentID.String()) {
		config.Error(w, r, apperror.New(apperror.Forbidden, "access denied"))
		return
	}

	rows, err := h.service.Results(r.Context(), studentID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.service.ListTests(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, tests)
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	var testID *uuid.UUID
	if raw := r.URL.Query().Get("test_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			config.Error(w, r, apperror.New(apperror.Validation, "invalid test id"))
			return
		}
		testID = &id
	}

	questions, err := h.service.ListQuestions(r.Context(), testID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var dto CreateQuestionDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	q, err := h.service.CreateQuestion(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid question id"))
		return
	}

	var dto UpdateQuestionDTO
	if err := config.Bind(r, &dto); err != nil {
		config.Error(w, r, err)
		return
	}

	q, err := h.service.UpdateQuestion(r.Context(), id, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, r, apperror.New(apperror.Validation, "invalid question id"))
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "question deleted"})
}
