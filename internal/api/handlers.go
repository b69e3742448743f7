package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandlers exposes the trivia REST endpoints.
type HTTPHandlers struct {
	svc    *trivia.Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for the trivia endpoints.
func NewHTTPHandlers(svc *trivia.Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register mounts every route on mux. Method checks happen in the handlers so that wrong
// verbs get the JSON envelope rather than the mux's plain-text 405.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/categories", h.Categories)
	mux.HandleFunc("/categories/{id}/questions", h.CategoryQuestions)
	mux.HandleFunc("/questions", h.Questions)
	mux.HandleFunc("/questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("/quizzes", h.Quizzes)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})
}

// Categories handles GET /categories
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.log(r).Error().Err(err).Msg("list categories failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// Questions handles GET and POST /questions
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.postQuestions(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		if errors.Is(err, trivia.ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.log(r).Error().Err(err).Msg("list questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       page.Questions,
		"totalQuestions":  page.TotalQuestions,
		"currentCategory": page.CurrentCategory,
		"categories":      page.Categories,
	})
}

// postQuestions serves both search and create; the body shape picks one.
func (h *HTTPHandlers) postQuestions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	req, err := trivia.DecodeQuestionsBody(body)
	if err != nil {
		h.log(r).Warn().Err(err).Msg("invalid questions payload")
		httperrors.RespondBadRequest(w)
		return
	}

	if req.Search != nil {
		h.searchQuestions(w, r, *req.Search)
		return
	}
	h.createQuestion(w, r, *req.Create)
}

func (h *HTTPHandlers) searchQuestions(w http.ResponseWriter, r *http.Request, term string) {
	result, err := h.svc.SearchQuestions(r.Context(), term)
	if err != nil {
		h.log(r).Error().Err(err).Str("term", term).Msg("search questions failed")
		httperrors.RespondBadRequest(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions":       result.Questions,
		"totalQuestions":  result.TotalQuestions,
		"currentCategory": result.CurrentCategory,
	})
}

func (h *HTTPHandlers) createQuestion(w http.ResponseWriter, r *http.Request, nq trivia.NewQuestion) {
	created, err := h.svc.CreateQuestion(r.Context(), nq)
	if err != nil {
		var missing *trivia.MissingFieldError
		if errors.As(err, &missing) {
			h.log(r).Warn().Str("field", missing.Field).Msg("create question missing field")
		} else {
			h.log(r).Error().Err(err).Msg("create question failed")
		}
		httperrors.RespondBadRequest(w)
		return
	}

	h.respondJSON(w, http.StatusOK, created)
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.log(r).Warn().Err(err).Int("question_id", id).Msg("delete question failed")
		httperrors.RespondBadRequest(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      id,
	})
}

// CategoryQuestions handles GET /categories/{id}/questions
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	page, err := h.svc.CategoryQuestions(r.Context(), id, pageParam(r))
	if err != nil {
		if errors.Is(err, trivia.ErrNotFound) {
			h.log(r).Info().Int("category_id", id).Msg("category not found")
		} else {
			h.log(r).Error().Err(err).Int("category_id", id).Msg("category questions failed")
		}
		httperrors.RespondBadRequest(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions":       page.Questions,
		"totalQuestion":   page.TotalQuestions,
		"currentCategory": page.CurrentCategory,
	})
}

// QuizRequest is the POST /quizzes body.
type QuizRequest struct {
	QuizCategory *struct {
		ID   *trivia.FlexInt `json:"id"`
		Type string          `json:"type"`
	} `json:"quiz_category"`
	PreviousQuestions []trivia.FlexInt `json:"previous_questions"`
}

// Quizzes handles POST /quizzes
func (h *HTTPHandlers) Quizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req QuizRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		httperrors.RespondBadRequest(w)
		return
	}

	categoryID := int(*req.QuizCategory.ID)
	previous := make([]int, len(req.PreviousQuestions))
	for i, id := range req.PreviousQuestions {
		previous[i] = int(id)
	}

	logger := h.log(r).With().
		Int("category_id", categoryID).
		Str("category_type", req.QuizCategory.Type).
		Int("previous_count", len(previous)).
		Logger()

	question, err := h.svc.NextQuizQuestion(r.Context(), categoryID, previous)
	if err != nil {
		if errors.Is(err, trivia.ErrCategoryNotFound) {
			logger.Info().Msg("quiz category has no questions")
		} else {
			logger.Error().Err(err).Msg("quiz selection failed")
		}
		httperrors.RespondBadRequest(w)
		return
	}
	if question == nil {
		logger.Debug().Msg("quiz round exhausted")
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"question": question,
	})
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// log prefers the request-scoped logger installed by the server middleware.
func (h *HTTPHandlers) log(r *http.Request) zerolog.Logger {
	if l := logging.FromContext(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l.With().Str("component", "trivia_http").Logger()
	}
	return h.logger
}

// pageParam treats absent, malformed or non-positive pages as page 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
