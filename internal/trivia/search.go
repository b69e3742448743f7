package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// QuestionsRequest is a decoded POST /questions body. Exactly one of Search or Create is set.
type QuestionsRequest struct {
	Search *string
	Create *NewQuestion
}

// DecodeQuestionsBody tells a search from a create by the presence of the searchTerm key.
// A present searchTerm, including "", selects search; a null searchTerm selects create.
func DecodeQuestionsBody(body []byte) (QuestionsRequest, error) {
	var probe struct {
		SearchTerm *string `json:"searchTerm"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return QuestionsRequest{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if probe.SearchTerm != nil {
		return QuestionsRequest{Search: probe.SearchTerm}, nil
	}

	var raw struct {
		Question   *string  `json:"question"`
		Answer     *string  `json:"answer"`
		Category   *FlexInt `json:"category"`
		Difficulty *FlexInt `json:"difficulty"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return QuestionsRequest{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return QuestionsRequest{Create: &NewQuestion{
		Question:   raw.Question,
		Answer:     raw.Answer,
		Category:   raw.Category.IntPtr(),
		Difficulty: raw.Difficulty.IntPtr(),
	}}, nil
}

// MatchesTerm reports whether the question text contains term, ignoring case.
func MatchesTerm(q Question, term string) bool {
	return strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
}

// Validate reports the first absent create field.
func (nq NewQuestion) Validate() error {
	switch {
	case nq.Question == nil:
		return &MissingFieldError{Field: "question"}
	case nq.Answer == nil:
		return &MissingFieldError{Field: "answer"}
	case nq.Category == nil:
		return &MissingFieldError{Field: "category"}
	case nq.Difficulty == nil:
		return &MissingFieldError{Field: "difficulty"}
	}
	return nil
}

// SearchQuestions returns every question whose text contains term. Results are not paginated.
func (s *Service) SearchQuestions(ctx context.Context, term string) (SearchResult, error) {
	questions, err := s.repo.ListQuestions(ctx, QuestionFilter{SearchTerm: &term})
	if err != nil {
		return SearchResult{}, NewRepositoryError("search questions", err)
	}
	if questions == nil {
		questions = []Question{}
	}
	return SearchResult{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: SearchCategory,
	}, nil
}

// CreateQuestion validates and persists a new question.
func (s *Service) CreateQuestion(ctx context.Context, nq NewQuestion) (Question, error) {
	if err := nq.Validate(); err != nil {
		return Question{}, err
	}
	created, err := s.repo.InsertQuestion(ctx, nq)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrMissingField) {
			return Question{}, err
		}
		return Question{}, NewRepositoryError("insert question", err)
	}
	s.logger.Info().Int("question_id", created.ID).Int("category", created.Category).Msg("question created")
	return created, nil
}
