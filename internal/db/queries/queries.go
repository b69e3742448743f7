// Package queries holds the SQL statements for the trivia schema.
package queries

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Category struct {
	ID   int32
	Type string
}

type Question struct {
	ID         int32
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

type InsertQuestionParams struct {
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

const listCategories = `SELECT id, type FROM categories ORDER BY id`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Category, error) {
		var c Category
		err := row.Scan(&c.ID, &c.Type)
		return c, err
	})
}

const getCategory = `SELECT id, type FROM categories WHERE id = $1`

func (q *Queries) GetCategory(ctx context.Context, id int32) (Category, error) {
	var c Category
	err := q.db.QueryRow(ctx, getCategory, id).Scan(&c.ID, &c.Type)
	return c, err
}

const listQuestions = `
SELECT id, question, answer, category, difficulty
FROM questions
ORDER BY id`

func (q *Queries) ListQuestions(ctx context.Context) ([]Question, error) {
	return q.collectQuestions(ctx, listQuestions)
}

const listQuestionsByCategory = `
SELECT id, question, answer, category, difficulty
FROM questions
WHERE category = $1
ORDER BY id`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, category int32) ([]Question, error) {
	return q.collectQuestions(ctx, listQuestionsByCategory, category)
}

const searchQuestions = `
SELECT id, question, answer, category, difficulty
FROM questions
WHERE question ILIKE '%' || $1 || '%' ESCAPE '\'
ORDER BY id`

// SearchQuestions matches term literally; LIKE wildcards in term are escaped.
func (q *Queries) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	return q.collectQuestions(ctx, searchQuestions, EscapeLike(term))
}

const searchQuestionsByCategory = `
SELECT id, question, answer, category, difficulty
FROM questions
WHERE category = $1 AND question ILIKE '%' || $2 || '%' ESCAPE '\'
ORDER BY id`

func (q *Queries) SearchQuestionsByCategory(ctx context.Context, category int32, term string) ([]Question, error) {
	return q.collectQuestions(ctx, searchQuestionsByCategory, category, EscapeLike(term))
}

const deleteQuestion = `DELETE FROM questions WHERE id = $1`

// DeleteQuestion returns the number of rows removed.
func (q *Queries) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const insertQuestion = `
INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category, difficulty`

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	var out Question
	err := q.db.QueryRow(ctx, insertQuestion, arg.Question, arg.Answer, arg.Category, arg.Difficulty).
		Scan(&out.ID, &out.Question, &out.Answer, &out.Category, &out.Difficulty)
	return out, err
}

func (q *Queries) collectQuestions(ctx context.Context, sql string, args ...any) ([]Question, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Question, error) {
		var out Question
		err := row.Scan(&out.ID, &out.Question, &out.Answer, &out.Category, &out.Difficulty)
		return out, err
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralises LIKE metacharacters so term matches literally.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
