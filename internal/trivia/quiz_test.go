package trivia_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
	"github.com/gokatarajesh/trivia-api/internal/trivia/triviatest"
)

func TestQuizNextDrainsAllQuestions(t *testing.T) {
	selector := trivia.NewQuizSelector(seedRepo(), trivia.NewRandomizer(42))
	ctx := context.Background()

	var previous []int
	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		q, err := selector.Next(ctx, trivia.AllCategories, previous)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.False(t, seen[q.ID], "question %d returned twice", q.ID)
		seen[q.ID] = true
		previous = append(previous, q.ID)
	}

	q, err := selector.Next(ctx, trivia.AllCategories, previous)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestQuizNextStaysInCategory(t *testing.T) {
	selector := trivia.NewQuizSelector(seedRepo(), nil)
	for i := 0; i < 20; i++ {
		q, err := selector.Next(context.Background(), 1, nil)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 1, q.Category)
	}
}

func TestQuizNextSingleUnseenIsDeterministic(t *testing.T) {
	repo := triviatest.NewRepository(
		[]trivia.Category{{ID: 1, Type: "Science"}},
		[]trivia.Question{{ID: 1, Category: 1}, {ID: 2, Category: 1}},
	)
	selector := trivia.NewQuizSelector(repo, trivia.NewRandomizer(7))

	for i := 0; i < 10; i++ {
		q, err := selector.Next(context.Background(), 1, []int{1})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 2, q.ID)
	}
}

func TestQuizNextUsesRandomizer(t *testing.T) {
	selector := trivia.NewQuizSelector(seedRepo(), triviatest.FixedRand(1))

	q, err := selector.Next(context.Background(), trivia.AllCategories, []int{1})
	require.NoError(t, err)
	require.NotNil(t, q)
	// unseen pool is [2 3 4]; index 1 is question 3
	assert.Equal(t, 3, q.ID)
}

func TestQuizNextUnknownCategory(t *testing.T) {
	selector := trivia.NewQuizSelector(seedRepo(), nil)

	_, err := selector.Next(context.Background(), 99, nil)
	assert.ErrorIs(t, err, trivia.ErrCategoryNotFound)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestQuizNextRepositoryFailure(t *testing.T) {
	repo := seedRepo()
	repo.Err = errors.New("db down")
	selector := trivia.NewQuizSelector(repo, nil)

	_, err := selector.Next(context.Background(), trivia.AllCategories, nil)
	assert.ErrorIs(t, err, trivia.ErrRepository)
	assert.NotErrorIs(t, err, trivia.ErrCategoryNotFound)
}

func TestUnseenIgnoresUnknownIDs(t *testing.T) {
	pool := []trivia.Question{{ID: 1}, {ID: 2}, {ID: 3}}
	got := trivia.Unseen(pool, []int{2, 40, 2})
	assert.Equal(t, []trivia.Question{{ID: 1}, {ID: 3}}, got)
}
