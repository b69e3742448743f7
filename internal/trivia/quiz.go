package trivia

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Randomizer picks an index in [0, n).
type Randomizer interface {
	Intn(n int) int
}

// lockedRand makes a math/rand source safe for concurrent handlers.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomizer returns a goroutine-safe Randomizer seeded with seed.
func NewRandomizer(seed int64) Randomizer {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// QuizSelector draws the next unseen question for a quiz round. It keeps no state between
// calls; the caller accumulates previously asked ids and sends them on every call.
type QuizSelector struct {
	repo Repository
	rand Randomizer
}

// NewQuizSelector builds a selector. A nil rnd falls back to a time-seeded source.
func NewQuizSelector(repo Repository, rnd Randomizer) *QuizSelector {
	if rnd == nil {
		rnd = NewRandomizer(time.Now().UnixNano())
	}
	return &QuizSelector{repo: repo, rand: rnd}
}

// Next returns a random question from the category (or every category for AllCategories)
// whose id is not in previousIDs. It returns ErrCategoryNotFound when the category holds
// no questions at all, and (nil, nil) once every question has been asked.
func (q *QuizSelector) Next(ctx context.Context, categoryID int, previousIDs []int) (*Question, error) {
	var filter QuestionFilter
	if categoryID != AllCategories {
		filter.CategoryID = &categoryID
	}
	pool, err := q.repo.ListQuestions(ctx, filter)
	if err != nil {
		return nil, NewRepositoryError("list quiz pool", err)
	}
	if len(pool) == 0 {
		return nil, ErrCategoryNotFound
	}

	unseen := Unseen(pool, previousIDs)
	if len(unseen) == 0 {
		return nil, nil
	}
	picked := unseen[q.rand.Intn(len(unseen))]
	return &picked, nil
}

// Unseen filters pool down to questions whose id is not in seen, preserving order.
func Unseen(pool []Question, seen []int) []Question {
	skip := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		skip[id] = struct{}{}
	}
	out := make([]Question, 0, len(pool))
	for _, candidate := range pool {
		if _, ok := skip[candidate.ID]; ok {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
