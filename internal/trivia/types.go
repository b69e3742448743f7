package trivia

import "context"

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// AllCategories selects every question in the bank when used as a quiz category.
const AllCategories = 0

// Current-category labels reported alongside listings that are not scoped to a category.
const (
	ListingCategory = "History"
	SearchCategory  = "hot"
)

// Question is a single trivia entry as stored and delivered to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries create input; nil fields were absent from the request.
type NewQuestion struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// QuestionFilter narrows ListQuestions. Nil fields do not filter.
type QuestionFilter struct {
	CategoryID *int
	SearchTerm *string
}

// Repository is the persistence collaborator. ListQuestions returns rows ordered by id.
// Missing rows are reported as ErrNotFound.
type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (Category, error)
	ListQuestions(ctx context.Context, filter QuestionFilter) ([]Question, error)
	DeleteQuestion(ctx context.Context, id int) error
	InsertQuestion(ctx context.Context, q NewQuestion) (Question, error)
}

// QuestionPage is one window of the full question listing.
type QuestionPage struct {
	Questions       []Question
	TotalQuestions  int
	CurrentCategory string
	Categories      map[int]string
}

// CategoryPage is one window of a category-scoped listing.
type CategoryPage struct {
	Questions       []Question
	TotalQuestions  int
	CurrentCategory string
}

// SearchResult holds every question matching a search term.
type SearchResult struct {
	Questions       []Question
	TotalQuestions  int
	CurrentCategory string
}
