package trivia

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quizServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trivia_quiz_questions_served_total",
		Help: "Quiz questions handed out.",
	})
	quizExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trivia_quiz_rounds_exhausted_total",
		Help: "Quiz requests answered with no remaining question.",
	})
)
