package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type triviaStore interface {
	ListCategories(ctx context.Context) ([]queries.Category, error)
	GetCategory(ctx context.Context, id int32) (queries.Category, error)
	ListQuestions(ctx context.Context) ([]queries.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int32) ([]queries.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]queries.Question, error)
	SearchQuestionsByCategory(ctx context.Context, category int32, term string) ([]queries.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
	InsertQuestion(ctx context.Context, arg queries.InsertQuestionParams) (queries.Question, error)
}

// TriviaRepository adapts the SQL queries to trivia.Repository.
type TriviaRepository struct {
	store triviaStore
}

var _ trivia.Repository = (*TriviaRepository)(nil)

func NewTriviaRepository(store triviaStore) *TriviaRepository {
	return &TriviaRepository{store: store}
}

// ListCategories returns every category ordered by id.
func (r *TriviaRepository) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]trivia.Category, len(rows))
	for i, row := range rows {
		out[i] = toCategory(row)
	}
	return out, nil
}

// GetCategory fetches one category; pgx.ErrNoRows becomes trivia.ErrNotFound.
func (r *TriviaRepository) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	key, ok := toKey(id)
	if !ok {
		return trivia.Category{}, trivia.ErrNotFound
	}
	row, err := r.store.GetCategory(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, trivia.ErrNotFound
		}
		return trivia.Category{}, err
	}
	return toCategory(row), nil
}

// ListQuestions picks the narrowest query for the filter. A category id that no
// row can hold matches nothing.
func (r *TriviaRepository) ListQuestions(ctx context.Context, filter trivia.QuestionFilter) ([]trivia.Question, error) {
	var category int32
	if filter.CategoryID != nil {
		key, ok := toKey(*filter.CategoryID)
		if !ok {
			return []trivia.Question{}, nil
		}
		category = key
	}

	var (
		rows []queries.Question
		err  error
	)
	switch {
	case filter.CategoryID != nil && filter.SearchTerm != nil:
		rows, err = r.store.SearchQuestionsByCategory(ctx, category, *filter.SearchTerm)
	case filter.CategoryID != nil:
		rows, err = r.store.ListQuestionsByCategory(ctx, category)
	case filter.SearchTerm != nil:
		rows, err = r.store.SearchQuestions(ctx, *filter.SearchTerm)
	default:
		rows, err = r.store.ListQuestions(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]trivia.Question, len(rows))
	for i, row := range rows {
		out[i] = toQuestion(row)
	}
	return out, nil
}

// DeleteQuestion removes a question; deleting nothing is trivia.ErrNotFound.
func (r *TriviaRepository) DeleteQuestion(ctx context.Context, id int) error {
	key, ok := toKey(id)
	if !ok {
		return trivia.ErrNotFound
	}
	affected, err := r.store.DeleteQuestion(ctx, key)
	if err != nil {
		return err
	}
	if affected == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

// InsertQuestion stores a validated question and returns the persisted row.
func (r *TriviaRepository) InsertQuestion(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	if err := q.Validate(); err != nil {
		return trivia.Question{}, err
	}
	category, ok := toKey(*q.Category)
	if !ok {
		return trivia.Question{}, fmt.Errorf("%w: category %d out of range", trivia.ErrInvalidRequest, *q.Category)
	}
	difficulty, ok := toKey(*q.Difficulty)
	if !ok {
		return trivia.Question{}, fmt.Errorf("%w: difficulty %d out of range", trivia.ErrInvalidRequest, *q.Difficulty)
	}
	row, err := r.store.InsertQuestion(ctx, queries.InsertQuestionParams{
		Question:   *q.Question,
		Answer:     *q.Answer,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		return trivia.Question{}, err
	}
	return toQuestion(row), nil
}

// toKey narrows id to the integer column type, reporting false when it does not fit.
func toKey(id int) (int32, bool) {
	if id < math.MinInt32 || id > math.MaxInt32 {
		return 0, false
	}
	return int32(id), true
}

func toCategory(row queries.Category) trivia.Category {
	return trivia.Category{ID: int(row.ID), Type: row.Type}
}

func toQuestion(row queries.Question) trivia.Question {
	return trivia.Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}
