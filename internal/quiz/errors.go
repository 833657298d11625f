package quiz

import "github.com/anupks5942/lms-backend/internal/apperr"

var errNoQuestions = apperr.Validation("A quiz needs at least one question")

func errQuestionType(i int) error {
	return apperr.Validation("Question %d: only multiple-choice questions are supported", i+1)
}

func errQuestionText(i int) error {
	return apperr.Validation("Question %d: question text is required", i+1)
}

func errQuestionOptions(i int) error {
	return apperr.Validation("Question %d: at least one option is required", i+1)
}

func errQuestionAnswer(i int) error {
	return apperr.Validation("Question %d: a correct answer is required", i+1)
}
