package trivia

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// CategoryCache stores the category list between requests. Get returns nil on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// Service orchestrates repository access for the HTTP layer.
type Service struct {
	repo   Repository
	cache  CategoryCache
	quiz   *QuizSelector
	logger zerolog.Logger
}

type ServiceOptions struct {
	// Cache is optional; without it every request reads categories from the repository.
	Cache      CategoryCache
	Randomizer Randomizer
}

func NewService(repo Repository, opts ServiceOptions, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  opts.Cache,
		quiz:   NewQuizSelector(repo, opts.Randomizer),
		logger: logger.With().Str("component", "trivia_service").Logger(),
	}
}

// Categories returns the id -> label index of every category.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	categories, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	return IndexCategories(categories), nil
}

// ListQuestions returns one page of all questions ordered by id.
// An empty page is ErrPageEmpty.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	categories, err := s.listCategories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	questions, err := s.repo.ListQuestions(ctx, QuestionFilter{})
	if err != nil {
		return QuestionPage{}, NewRepositoryError("list questions", err)
	}

	current := Paginate(page, questions)
	if len(current) == 0 {
		return QuestionPage{}, ErrPageEmpty
	}
	return QuestionPage{
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: ListingCategory,
		Categories:      IndexCategories(categories),
	}, nil
}

// CategoryQuestions returns one page of the questions belonging to categoryID.
// An unknown category is ErrNotFound; an empty page is not an error here.
func (s *Service) CategoryQuestions(ctx context.Context, categoryID, page int) (CategoryPage, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CategoryPage{}, err
		}
		return CategoryPage{}, NewRepositoryError("get category", err)
	}
	questions, err := s.repo.ListQuestions(ctx, QuestionFilter{CategoryID: &categoryID})
	if err != nil {
		return CategoryPage{}, NewRepositoryError("list category questions", err)
	}
	return CategoryPage{
		Questions:       Paginate(page, questions),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// DeleteQuestion removes a question by id. A missing id is ErrNotFound.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return NewRepositoryError("delete question", err)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}

// NextQuizQuestion draws the next unseen quiz question. See QuizSelector.Next.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int, previousIDs []int) (*Question, error) {
	q, err := s.quiz.Next(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, err
	}
	if q == nil {
		quizExhausted.Inc()
		return nil, nil
	}
	quizServed.Inc()
	return q, nil
}

func (s *Service) listCategories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, NewRepositoryError("list categories", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}
