// Package triviatest provides an in-memory trivia.Repository for tests.
package triviatest

import (
	"context"
	"sort"
	"sync"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Repository is a goroutine-safe in-memory trivia.Repository.
// Setting Err makes every call fail with it.
type Repository struct {
	mu         sync.Mutex
	categories map[int]trivia.Category
	questions  map[int]trivia.Question
	nextID     int

	Err error
}

var _ trivia.Repository = (*Repository)(nil)

func NewRepository(categories []trivia.Category, questions []trivia.Question) *Repository {
	r := &Repository{
		categories: make(map[int]trivia.Category, len(categories)),
		questions:  make(map[int]trivia.Question, len(questions)),
	}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	for _, q := range questions {
		r.questions[q.ID] = q
		if q.ID > r.nextID {
			r.nextID = q.ID
		}
	}
	return r
}

func (r *Repository) ListCategories(_ context.Context) ([]trivia.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]trivia.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) GetCategory(_ context.Context, id int) (trivia.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return trivia.Category{}, r.Err
	}
	c, ok := r.categories[id]
	if !ok {
		return trivia.Category{}, trivia.ErrNotFound
	}
	return c, nil
}

func (r *Repository) ListQuestions(_ context.Context, filter trivia.QuestionFilter) ([]trivia.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]trivia.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if filter.CategoryID != nil && q.Category != *filter.CategoryID {
			continue
		}
		if filter.SearchTerm != nil && !trivia.MatchesTerm(q, *filter.SearchTerm) {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) DeleteQuestion(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.questions[id]; !ok {
		return trivia.ErrNotFound
	}
	delete(r.questions, id)
	return nil
}

func (r *Repository) InsertQuestion(_ context.Context, nq trivia.NewQuestion) (trivia.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return trivia.Question{}, r.Err
	}
	r.nextID++
	q := trivia.Question{
		ID:         r.nextID,
		Question:   *nq.Question,
		Answer:     *nq.Answer,
		Category:   *nq.Category,
		Difficulty: *nq.Difficulty,
	}
	r.questions[q.ID] = q
	return q, nil
}

// Question returns a stored question by id.
func (r *Repository) Question(id int) (trivia.Question, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[id]
	return q, ok
}

// FixedRand always returns the same index, clamped into range.
type FixedRand int

func (f FixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
