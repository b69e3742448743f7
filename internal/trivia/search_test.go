package trivia_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
	"github.com/gokatarajesh/trivia-api/internal/trivia/triviatest"
)

func seedRepo() *triviatest.Repository {
	return triviatest.NewRepository(
		[]trivia.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}, {ID: 3, Type: "Geography"}},
		[]trivia.Question{
			{ID: 1, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
			{ID: 2, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
			{ID: 3, Question: "Which Dutch graphic artist made mathematical lithographs?", Answer: "Escher", Category: 2, Difficulty: 1},
			{ID: 4, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		},
	)
}

func TestDecodeQuestionsBody(t *testing.T) {
	req, err := trivia.DecodeQuestionsBody([]byte(`{"searchTerm":""}`))
	require.NoError(t, err)
	require.NotNil(t, req.Search)
	assert.Equal(t, "", *req.Search)
	assert.Nil(t, req.Create)

	req, err = trivia.DecodeQuestionsBody([]byte(`{"question":"Q","answer":"A","category":"2","difficulty":3}`))
	require.NoError(t, err)
	require.NotNil(t, req.Create)
	assert.Nil(t, req.Search)
	assert.Equal(t, 2, *req.Create.Category)
	assert.Equal(t, 3, *req.Create.Difficulty)

	req, err = trivia.DecodeQuestionsBody([]byte(`{"searchTerm":null,"question":"Q"}`))
	require.NoError(t, err)
	require.NotNil(t, req.Create)
	assert.Nil(t, req.Create.Answer)

	_, err = trivia.DecodeQuestionsBody([]byte(`not json`))
	assert.ErrorIs(t, err, trivia.ErrInvalidRequest)

	_, err = trivia.DecodeQuestionsBody([]byte(`{"category":"science"}`))
	assert.ErrorIs(t, err, trivia.ErrInvalidRequest)
}

func TestSearchQuestions(t *testing.T) {
	svc := trivia.NewService(seedRepo(), trivia.ServiceOptions{}, zerolog.Nop())
	ctx := context.Background()

	all, err := svc.SearchQuestions(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, all.TotalQuestions)
	assert.Equal(t, trivia.SearchCategory, all.CurrentCategory)

	hits, err := svc.SearchQuestions(ctx, "WHAT is")
	require.NoError(t, err)
	assert.Equal(t, 2, hits.TotalQuestions)
	assert.Equal(t, 1, hits.Questions[0].ID)
	assert.Equal(t, 4, hits.Questions[1].ID)

	none, err := svc.SearchQuestions(ctx, "zzzz")
	require.NoError(t, err)
	assert.Equal(t, 0, none.TotalQuestions)
	assert.NotNil(t, none.Questions)
	assert.Empty(t, none.Questions)
}

func TestSearchQuestionsRepositoryFailure(t *testing.T) {
	repo := seedRepo()
	repo.Err = errors.New("connection reset")
	svc := trivia.NewService(repo, trivia.ServiceOptions{}, zerolog.Nop())

	_, err := svc.SearchQuestions(context.Background(), "x")
	assert.ErrorIs(t, err, trivia.ErrRepository)
}

func TestCreateQuestion(t *testing.T) {
	repo := seedRepo()
	svc := trivia.NewService(repo, trivia.ServiceOptions{}, zerolog.Nop())

	text, answer, category, difficulty := "What is H2O?", "Water", 1, 2
	created, err := svc.CreateQuestion(context.Background(), trivia.NewQuestion{
		Question:   &text,
		Answer:     &answer,
		Category:   &category,
		Difficulty: &difficulty,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, text, created.Question)
	assert.Equal(t, answer, created.Answer)
	assert.Equal(t, category, created.Category)
	assert.Equal(t, difficulty, created.Difficulty)

	stored, ok := repo.Question(created.ID)
	assert.True(t, ok)
	assert.Equal(t, created, stored)
}

func TestCreateQuestionMissingField(t *testing.T) {
	svc := trivia.NewService(seedRepo(), trivia.ServiceOptions{}, zerolog.Nop())

	text, answer, category := "Q", "A", 1
	_, err := svc.CreateQuestion(context.Background(), trivia.NewQuestion{
		Question: &text,
		Answer:   &answer,
		Category: &category,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, trivia.ErrMissingField)

	var missing *trivia.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "difficulty", missing.Field)
}

func TestCreateQuestionRejectedInputIsNotRepositoryFailure(t *testing.T) {
	repo := seedRepo()
	repo.Err = fmt.Errorf("%w: category 4294967297 out of range", trivia.ErrInvalidRequest)
	svc := trivia.NewService(repo, trivia.ServiceOptions{}, zerolog.Nop())

	text, answer, category, difficulty := "Q", "A", 4294967297, 1
	_, err := svc.CreateQuestion(context.Background(), trivia.NewQuestion{
		Question:   &text,
		Answer:     &answer,
		Category:   &category,
		Difficulty: &difficulty,
	})
	assert.ErrorIs(t, err, trivia.ErrInvalidRequest)
	assert.NotErrorIs(t, err, trivia.ErrRepository)
}
