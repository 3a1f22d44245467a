package assessment

import (
	"context"
	"time"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/google/uuid"
)

type Service interface {
	StartOrResume(ctx context.Context, studentID uuid.UUID) (*SessionStateResponse, error)
	NextQuestion(ctx context.Context, actor uuid.UUID, sessionID uuid.UUID) (*NextQuestionResponse, error)
	SubmitAnswer(ctx context.Context, actor uuid.UUID, dto SubmitAnswerDTO) (*NextQuestionResponse, error)
	AdvanceStage(ctx context.Context, actor uuid.UUID, sessionID uuid.UUID) (*AdvanceStageResponse, error)
	Results(ctx context.Context, studentID uuid.UUID) ([]CategoryScore, error)
	ListTests(ctx context.Context) ([]TestInfoResponse, error)

	ListQuestions(ctx context.Context, testID *uuid.UUID) ([]Question, error)
	CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	UpdateQuestion(ctx context.Context, id uuid.UUID, dto UpdateQuestionDTO) (*Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// loadSession fetches a session and enforces ownership. An actor of uuid.Nil
// bypasses the check (admin paths).
func (s *service) loadSession(actor, sessionID uuid.UUID) (*Session, error) {
	sess, err := s.repo.SessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperror.New(apperror.NotFound, "assessment session not found")
	}
	if actor != uuid.Nil && sess.StudentID != actor {
		return nil, apperror.New(apperror.Forbidden, "session belongs to another student")
	}
	return sess, nil
}

// StartOrResume returns the student's in-progress session, creating one at
// the first stage when none exists.
func (s *service) StartOrResume(ctx context.Context, studentID uuid.UUID) (*SessionStateResponse, error) {
	log := config.WithContext(ctx)

	sess, err := s.repo.ActiveSessionByStudent(studentID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		first, err := s.repo.FirstTest()
		if err != nil {
			return nil, err
		}
		if first == nil {
			return nil, apperror.New(apperror.NotFound, "no assessment tests configured")
		}
		sess = &Session{
			ID:           uuid.New(),
			StudentID:    studentID,
			TestID:       first.ID,
			CurrentStage: first.Code,
			Status:       SessionInProgress,
		}
		if err := s.repo.CreateSession(sess); err != nil {
			return nil, err
		}
		log.WithField("student_id", studentID.String()).Info("assessment session started")
	}

	return &SessionStateResponse{
		SessionID:    sess.ID,
		CurrentStage: sess.CurrentStage,
		Progress:     sess.Progress,
		Status:       sess.Status,
	}, nil
}

func (s *service) NextQuestion(ctx context.Context, actor uuid.UUID, sessionID uuid.UUID) (*NextQuestionResponse, error) {
	sess, err := s.loadSession(actor, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != SessionInProgress {
		return nil, apperror.New(apperror.Conflict, "assessment already completed")
	}
	return s.questionAtProgress(sess)
}

func (s *service) questionAtProgress(sess *Session) (*NextQuestionResponse, error) {
	total, err := s.repo.CountQuestions(sess.TestID)
	if err != nil {
		return nil, err
	}
	if sess.Progress >= total {
		return &NextQuestionResponse{StageComplete: true, Stage: sess.CurrentStage}, nil
	}

	q, err := s.repo.QuestionAt(sess.TestID, sess.Progress)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return &NextQuestionResponse{StageComplete: true, Stage: sess.CurrentStage}, nil
	}

	opts, err := s.repo.OptionsByQuestion(q.ID)
	if err != nil {
		return nil, err
	}

	return &NextQuestionResponse{
		Question:       q,
		Options:        opts,
		Stage:          sess.CurrentStage,
		Progress:       sess.Progress,
		TotalQuestions: total,
	}, nil
}

// SubmitAnswer records the chosen option with its score snapshotted, bumps
// the stage progress and returns the next question (or stage_complete).
func (s *service) SubmitAnswer(ctx context.Context, actor uuid.UUID, dto SubmitAnswerDTO) (*NextQuestionResponse, error) {
	sessionID, err := uuid.Parse(dto.SessionID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid session id")
	}
	questionID, err := uuid.Parse(dto.QuestionID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid question id")
	}
	optionID, err := uuid.Parse(dto.OptionID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid option id")
	}

	sess, err := s.loadSession(actor, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != SessionInProgress {
		return nil, apperror.New(apperror.Conflict, "assessment already completed")
	}

	opt, err := s.repo.OptionByID(optionID)
	if err != nil {
		return nil, err
	}
	if opt == nil || opt.QuestionID != questionID {
		return nil, apperror.New(apperror.Validation, "option does not belong to the question")
	}

	if err := s.repo.CreateAnswer(&Answer{
		ID:         uuid.New(),
		SessionID:  sess.ID,
		QuestionID: questionID,
		OptionID:   optionID,
		Score:      opt.Score,
	}); err != nil {
		return nil, err
	}

	total, err := s.repo.CountQuestions(sess.TestID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementProgress(sess.ID, total); err != nil {
		return nil, err
	}

	// Re-read so the response reflects the stored counter, not a local guess.
	sess, err = s.repo.SessionByID(sess.ID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperror.New(apperror.NotFound, "assessment session not found")
	}
	return s.questionAtProgress(sess)
}

// AdvanceStage moves the session to the next test in sequence order. On the
// last stage it completes the session and writes the aggregate result.
// Repeat calls after completion are no-ops that report finished again.
func (s *service) AdvanceStage(ctx context.Context, actor uuid.UUID, sessionID uuid.UUID) (*AdvanceStageResponse, error) {
	log := config.WithContext(ctx)

	sess, err := s.loadSession(actor, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == SessionCompleted {
		return &AdvanceStageResponse{Finished: true}, nil
	}

	current, err := s.repo.TestByID(sess.TestID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.New(apperror.NotFound, "current test not found")
	}

	next, err := s.repo.NextTestAfter(current.Sequence)
	if err != nil {
		return nil, err
	}
	if next != nil {
		if err := s.repo.MoveSessionToStage(sess.ID, next.ID, next.Code); err != nil {
			return nil, err
		}
		return &AdvanceStageResponse{NextStage: next.Code}, nil
	}

	fresh, err := s.repo.CompleteSession(sess.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if fresh {
		// Result writing is best effort. The completed session is the source
		// of truth and Results recomputes from raw answers anyway.
		total, err := s.repo.SumSessionScore(sess.ID)
		if err == nil {
			err = s.repo.UpsertResult(&Result{
				ID:         uuid.New(),
				StudentID:  sess.StudentID,
				TestID:     sess.TestID,
				TotalScore: total,
			})
		}
		if err != nil {
			log.WithError(err).WithField("session_id", sess.ID.String()).
				Warn("failed to persist assessment result")
		}
		log.WithField("student_id", sess.StudentID.String()).Info("assessment completed")
	}

	return &AdvanceStageResponse{Finished: true}, nil
}

// Results aggregates the student's answer scores per category. When no
// answer maps to a tagged option, scoring falls back to positional buckets.
func (s *service) Results(ctx context.Context, studentID uuid.UUID) ([]CategoryScore, error) {
	rows, err := s.repo.CategoryTotals(studentID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if rows, err = s.repo.FallbackCategoryTotals(studentID); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func (s *service) ListTests(ctx context.Context) ([]TestInfoResponse, error) {
	tests, err := s.repo.ListTests()
	if err != nil {
		return nil, err
	}

	infos := make([]TestInfoResponse, 0, len(tests))
	for _, t := range tests {
		count, err := s.repo.CountQuestions(t.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, TestInfoResponse{
			ID:             t.ID,
			Name:           t.Name,
			Code:           t.Code,
			Description:    t.Description,
			TotalQuestions: count,
		})
	}
	return infos, nil
}

func (s *service) ListQuestions(ctx context.Context, testID *uuid.UUID) ([]Question, error) {
	return s.repo.ListQuestions(testID)
}

func (s *service) CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	testID, err := uuid.Parse(dto.TestID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "invalid test id")
	}

	test, err := s.repo.TestByID(testID)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, apperror.New(apperror.NotFound, "test not found")
	}

	sequence := dto.Sequence
	if sequence == 0 {
		max, err := s.repo.MaxQuestionSequence(testID)
		if err != nil {
			return nil, err
		}
		sequence = max + 1
	}

	q := &Question{
		ID:       uuid.New(),
		TestID:   testID,
		Text:     dto.Text,
		Sequence: sequence,
	}
	opts := make([]Option, 0, len(dto.Options))
	for _, o := range dto.Options {
		opts = append(opts, Option{
			ID:       uuid.New(),
			Text:     o.Text,
			Score:    o.Score,
			Category: o.Category,
		})
	}
	if err := s.repo.CreateQuestionWithOptions(q, opts); err != nil {
		return nil, err
	}
	q.Options = opts
	return q, nil
}

func (s *service) UpdateQuestion(ctx context.Context, id uuid.UUID, dto UpdateQuestionDTO) (*Question, error) {
	q, err := s.repo.QuestionByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.New(apperror.NotFound, "question not found")
	}

	if dto.Text != nil {
		q.Text = *dto.Text
	}
	if dto.Sequence != nil {
		q.Sequence = *dto.Sequence
	}
	if err := s.repo.UpdateQuestion(q); err != nil {
		return nil, err
	}

	if len(dto.Options) > 0 {
		opts := make([]Option, 0, len(dto.Options))
		for _, o := range dto.Options {
			opts = append(opts, Option{
				ID:       uuid.New(),
				Text:     o.Text,
				Score:    o.Score,
				Category: o.Category,
			})
		}
		if err := s.repo.ReplaceOptions(q.ID, opts); err != nil {
			return nil, err
		}
		q.Options = opts
	}
	return q, nil
}

func (s *service) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	q, err := s.repo.QuestionByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return apperror.New(apperror.NotFound, "question not found")
	}
	return s.repo.DeleteQuestion(id)
}
