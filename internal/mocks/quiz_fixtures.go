package mocks

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/quizgen-api/internal/domain"
)

// SampleSummary is a context summary used by tests.
const SampleSummary = "## Go\nGo is a statically typed, compiled language designed at Google. " +
	"Goroutines are lightweight threads managed by the Go runtime."

// SampleQuiz builds a well-formed quiz with n questions. Question i has id
// "q<i+1>" and correct answer i%4.
func SampleQuiz(n int) *domain.QuizQuestions {
	quiz := &domain.QuizQuestions{
		Title:    "Go Language Basics",
		Category: "Programming",
	}
	for i := 0; i < n; i++ {
		quiz.Questions = append(quiz.Questions, domain.QuizQuestion{
			ID:       fmt.Sprintf("q%d", i+1),
			Question: fmt.Sprintf("Question number %d about the Go language?", i+1),
			Options: []string{
				"Option A", "Option B", "Option C", "Option D",
			},
			CorrectAnswer: i % domain.OptionCount,
			Explanation:   fmt.Sprintf("Explanation for question %d drawn from the summary.", i+1),
		})
	}
	return quiz
}

// SampleQuizJSON returns SampleQuiz(n) serialized as the model would emit it.
func SampleQuizJSON(n int) string {
	return MustJSON(SampleQuiz(n))
}

// MustJSON marshals v or panics.
func MustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
