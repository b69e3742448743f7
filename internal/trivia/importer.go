package trivia

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/trivia/external"
)

var importedQuestions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trivia_import_questions_total",
	Help: "Questions seen by the importer by outcome.",
}, []string{"outcome"})

// difficultyScale maps OpenTDB difficulty names onto the 1-5 rating.
var difficultyScale = map[string]int{
	"easy":   1,
	"medium": 3,
	"hard":   5,
}

// QuestionSource yields questions from an external bank.
type QuestionSource interface {
	Fetch(ctx context.Context, params external.FetchParams) ([]external.OpenTDBQuestion, error)
}

// ImportResult counts what one import run did.
type ImportResult struct {
	Fetched  int
	Imported int
	Skipped  int
}

// Importer copies external questions into the bank through the service.
type Importer struct {
	svc    *Service
	source QuestionSource
	logger zerolog.Logger
}

func NewImporter(svc *Service, source QuestionSource, logger zerolog.Logger) *Importer {
	return &Importer{
		svc:    svc,
		source: source,
		logger: logger.With().Str("component", "trivia_importer").Logger(),
	}
}

// Import fetches one batch and inserts every question whose category and difficulty map
// onto the local bank. Questions already present with the same text are skipped.
// On an insert failure the partial result is returned with the error.
func (im *Importer) Import(ctx context.Context, params external.FetchParams) (ImportResult, error) {
	var result ImportResult

	categories, err := im.svc.listCategories(ctx)
	if err != nil {
		return result, err
	}
	byLabel := make(map[string]int, len(categories))
	for _, c := range categories {
		byLabel[strings.ToLower(c.Type)] = c.ID
	}

	fetched, err := im.source.Fetch(ctx, params)
	if err != nil {
		return result, fmt.Errorf("fetch external questions: %w", err)
	}
	result.Fetched = len(fetched)

	for _, raw := range fetched {
		eq := normalize(raw)
		categoryID, ok := MatchCategory(byLabel, eq.Category)
		if !ok {
			im.skip(&result, eq, "unmapped category")
			continue
		}
		difficulty, ok := difficultyScale[strings.ToLower(eq.Difficulty)]
		if !ok {
			im.skip(&result, eq, "unknown difficulty")
			continue
		}

		exists, err := im.exists(ctx, eq.Question)
		if err != nil {
			return result, err
		}
		if exists {
			im.skip(&result, eq, "duplicate")
			continue
		}

		text, answer := eq.Question, eq.CorrectAnswer
		if _, err := im.svc.CreateQuestion(ctx, NewQuestion{
			Question:   &text,
			Answer:     &answer,
			Category:   &categoryID,
			Difficulty: &difficulty,
		}); err != nil {
			importedQuestions.WithLabelValues("failed").Inc()
			return result, err
		}
		importedQuestions.WithLabelValues("imported").Inc()
		result.Imported++
	}

	im.logger.Info().
		Int("fetched", result.Fetched).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("import finished")
	return result, nil
}

// normalize decodes the HTML entities OpenTDB embeds in its text fields and trims them.
func normalize(q external.OpenTDBQuestion) external.OpenTDBQuestion {
	clean := func(s string) string { return strings.TrimSpace(html.UnescapeString(s)) }
	q.Category = clean(q.Category)
	q.Question = clean(q.Question)
	q.CorrectAnswer = clean(q.CorrectAnswer)
	q.Difficulty = clean(q.Difficulty)
	incorrect := make([]string, len(q.IncorrectAnswer))
	for i, a := range q.IncorrectAnswer {
		incorrect[i] = clean(a)
	}
	q.IncorrectAnswer = incorrect
	return q
}

func (im *Importer) skip(result *ImportResult, eq external.OpenTDBQuestion, reason string) {
	importedQuestions.WithLabelValues("skipped").Inc()
	result.Skipped++
	im.logger.Debug().Str("category", eq.Category).Str("reason", reason).Msg("question skipped")
}

func (im *Importer) exists(ctx context.Context, text string) (bool, error) {
	matches, err := im.svc.repo.ListQuestions(ctx, QuestionFilter{SearchTerm: &text})
	if err != nil {
		return false, NewRepositoryError("find duplicate question", err)
	}
	for _, q := range matches {
		if strings.EqualFold(q.Question, text) {
			return true, nil
		}
	}
	return false, nil
}

// MatchCategory resolves an external category label against lower-cased local labels.
// The full label is tried first, then its leading segment, so "Entertainment: Film" and
// "Science & Nature" resolve to Entertainment and Science.
func MatchCategory(byLabel map[string]int, label string) (int, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if id, ok := byLabel[label]; ok {
		return id, true
	}
	lead := label
	if i := strings.IndexAny(lead, ":&"); i >= 0 {
		lead = strings.TrimSpace(lead[:i])
	}
	id, ok := byLabel[lead]
	return id, ok
}
