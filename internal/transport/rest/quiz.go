package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/service/quiz"
)

type quizService interface {
	AddQuestion(ctx context.Context, input quiz.QuestionInput) (string, error)
	DeleteQuestion(ctx context.Context, id string) error
	SubscribeQuestions(ctx context.Context, fn func([]domain.QuizQuestion)) (func(), error)
	Start(ctx context.Context, count int) ([]quiz.PlayQuestion, error)
	Generate(ctx context.Context, termCount int) ([]domain.QuizQuestion, error)
	SaveResult(ctx context.Context, input quiz.ResultInput) (*domain.QuizResult, error)
	ListResults(ctx context.Context, limit int) ([]domain.QuizResult, error)
	DeleteResult(ctx context.Context, id uuid.UUID) error
}

type questionView interface {
	Ready() bool
	Questions() []domain.QuizQuestion
}

// QuizHandler serves quiz questions, play sessions and results.
type QuizHandler struct {
	svc  quizService
	view questionView
	log  *slog.Logger
}

func NewQuizHandler(svc quizService, view questionView, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, view: view, log: logger.With("handler", "quiz")}
}

type questionRequest struct {
	Term          string   `json:"term" validate:"max=200"`
	Question      string   `json:"question" validate:"required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	WrongAnswers  []string `json:"wrongAnswers" validate:"max=10"`
	Category      string   `json:"category" validate:"max=100"`
}

type questionResponse struct {
	ID            string    `json:"id"`
	Term          string    `json:"term"`
	Question      string    `json:"question"`
	CorrectAnswer string    `json:"correctAnswer"`
	WrongAnswers  []string  `json:"wrongAnswers"`
	Category      string    `json:"category"`
	GeneratedBy   string    `json:"generatedBy"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

type playQuestionResponse struct {
	questionResponse
	Options []string `json:"options"`
}

type startRequest struct {
	Count int `json:"count" validate:"min=0"`
}

type generateRequest struct {
	TermCount int `json:"termCount" validate:"min=0"`
}

type answerRequest struct {
	QuestionID    string `json:"questionId" validate:"required"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

type resultRequest struct {
	Category       string          `json:"category" validate:"max=100"`
	TotalQuestions int             `json:"totalQuestions" validate:"min=0"`
	Answers        []answerRequest `json:"answers" validate:"required,min=1,dive"`
}

type answerResponse struct {
	QuestionID string `json:"questionId"`
	Correct    bool   `json:"correct"`
	UserAnswer string `json:"userAnswer"`
}

type resultResponse struct {
	ID             string           `json:"id"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     int              `json:"percentage"`
	Rating         quiz.Rating      `json:"rating"`
	Answers        []answerResponse `json:"answers"`
	Category       string           `json:"category"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ListQuestions handles GET /quiz/questions.
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, _ *http.Request) {
	if !h.view.Ready() {
		writeError(w, http.StatusServiceUnavailable, "quiz questions are loading")
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponses(h.view.Questions()))
}

// StreamQuestions handles GET /quiz/questions/stream.
func (h *QuizHandler) StreamQuestions(w http.ResponseWriter, r *http.Request) {
	streamSnapshots(h.log, w, r, "questions", h.svc.SubscribeQuestions, toQuestionResponses)
}

// AddQuestion handles POST /quiz/questions.
func (h *QuizHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.svc.AddQuestion(r.Context(), quiz.QuestionInput{
		Term:          req.Term,
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		WrongAnswers:  req.WrongAnswers,
		Category:      req.Category,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

// DeleteQuestion handles DELETE /quiz/questions/{id}.
func (h *QuizHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteQuestion(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Start handles POST /quiz/start.
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	questions, err := h.svc.Start(r.Context(), req.Count)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]playQuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = playQuestionResponse{questionResponse: toQuestionResponse(q.QuizQuestion), Options: q.Options}
	}
	writeJSON(w, http.StatusOK, out)
}

// Generate handles POST /quiz/generate.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	questions, err := h.svc.Generate(r.Context(), req.TermCount)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuestionResponses(questions))
}

// SaveResult handles POST /quiz/results.
func (h *QuizHandler) SaveResult(w http.ResponseWriter, r *http.Request) {
	var req resultRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answers := make([]quiz.AnswerInput, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = quiz.AnswerInput{
			QuestionID:    a.QuestionID,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
		}
	}

	res, err := h.svc.SaveResult(r.Context(), quiz.ResultInput{
		Category:       req.Category,
		TotalQuestions: req.TotalQuestions,
		Answers:        answers,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResultResponse(*res))
}

// ListResults handles GET /quiz/results?limit=.
func (h *QuizHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeValidation(w, domain.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		limit = n
	}

	results, err := h.svc.ListResults(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]resultResponse, len(results))
	for i, res := range results {
		out[i] = toResultResponse(res)
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteResult handles DELETE /quiz/results/{id}.
func (h *QuizHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteResult(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toQuestionResponse(q domain.QuizQuestion) questionResponse {
	wrong := q.WrongAnswers
	if wrong == nil {
		wrong = []string{}
	}
	return questionResponse{
		ID:            q.ID,
		Term:          q.Term,
		Question:      q.Question,
		CorrectAnswer: q.CorrectAnswer,
		WrongAnswers:  wrong,
		Category:      q.Category,
		GeneratedBy:   q.GeneratedBy.String(),
		CreatedAt:     q.CreatedAt,
	}
}

func toQuestionResponses(questions []domain.QuizQuestion) []questionResponse {
	out := make([]questionResponse, len(questions))
	for i, q := range questions {
		out[i] = toQuestionResponse(q)
	}
	return out
}

func toResultResponse(res domain.QuizResult) resultResponse {
	answers := make([]answerResponse, len(res.Answers))
	for i, a := range res.Answers {
		answers[i] = answerResponse{QuestionID: a.QuestionID, Correct: a.Correct, UserAnswer: a.UserAnswer}
	}
	pct := quiz.Percentage(res.Score, res.TotalQuestions)
	return resultResponse{
		ID:             res.ID.String(),
		Score:          res.Score,
		TotalQuestions: res.TotalQuestions,
		Percentage:     pct,
		Rating:         quiz.Classify(pct),
		Answers:        answers,
		Category:       res.Category,
		CreatedAt:      res.CreatedAt,
	}
}
