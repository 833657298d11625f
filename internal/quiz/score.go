// Package quiz implements auto-grading of multiple-choice submissions.
package quiz

import (
	"math"

	"github.com/anupks5942/lms-backend/internal/models"
)

// Score grades a submission against a quiz's question list. Every question
// carries equal weight (100 / N); an answer earns its weight when it exactly
// matches the referenced question's correct answer. Each question counts at
// most once no matter how many answers reference it, so the score stays
// within [0, 100]. Answers pointing at an index outside the question list
// contribute nothing. A quiz with no questions scores 0.
func Score(questions []models.Question, answers []models.Answer) int {
	total := len(questions)
	if total == 0 {
		return 0
	}
	perQuestion := 100.0 / float64(total)

	matched := make(map[int]bool, total)
	for _, ans := range answers {
		if ans.QuestionIndex < 0 || ans.QuestionIndex >= total {
			continue
		}
		if questions[ans.QuestionIndex].CorrectAnswer == ans.Answer {
			matched[ans.QuestionIndex] = true
		}
	}

	score := float64(len(matched)) * perQuestion
	return int(math.Round(score))
}

// ValidateQuestions checks authored questions before they are stored: only
// multiple-choice questions are accepted, each with a prompt, at least one
// option, and a correct answer.
func ValidateQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return errNoQuestions
	}
	for i := range questions {
		q := &questions[i]
		if q.Type == "" {
			q.Type = models.QuestionTypeMultipleChoice
		}
		if q.Type != models.QuestionTypeMultipleChoice {
			return errQuestionType(i)
		}
		if q.QuestionText == "" {
			return errQuestionText(i)
		}
		if len(q.Options) == 0 {
			return errQuestionOptions(i)
		}
		if q.CorrectAnswer == "" {
			return errQuestionAnswer(i)
		}
	}
	return nil
}
