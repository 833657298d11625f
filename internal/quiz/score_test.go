package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anupks5942/lms-backend/internal/models"
)

func makeQuestions(correct ...string) []models.Question {
	questions := make([]models.Question, 0, len(correct))
	for _, c := range correct {
		questions = append(questions, models.Question{
			QuestionText:  "Q",
			Type:          models.QuestionTypeMultipleChoice,
			Options:       []string{"a", "b", "c", c},
			CorrectAnswer: c,
		})
	}
	return questions
}

func TestScore_FullCredit(t *testing.T) {
	questions := makeQuestions("a", "b", "c", "d")
	answers := []models.Answer{
		{QuestionIndex: 0, Answer: "a"},
		{QuestionIndex: 1, Answer: "b"},
		{QuestionIndex: 2, Answer: "c"},
		{QuestionIndex: 3, Answer: "d"},
	}

	assert.Equal(t, 100, Score(questions, answers))
}

func TestScore_ZeroCorrect(t *testing.T) {
	questions := makeQuestions("a", "b")
	answers := []models.Answer{
		{QuestionIndex: 0, Answer: "wrong"},
		{QuestionIndex: 1, Answer: "wrong"},
	}

	assert.Equal(t, 0, Score(questions, answers))
}

func TestScore_OneOfThree(t *testing.T) {
	questions := makeQuestions("a", "b", "c")
	answers := []models.Answer{
		{QuestionIndex: 0, Answer: "a"},
		{QuestionIndex: 1, Answer: "nope"},
		{QuestionIndex: 2, Answer: "nope"},
	}

	// round(100/3) = 33
	assert.Equal(t, 33, Score(questions, answers))
}

func TestScore_HalfCredit(t *testing.T) {
	questions := makeQuestions("a", "b")
	answers := []models.Answer{
		{QuestionIndex: 0, Answer: "a"},
		{QuestionIndex: 1, Answer: "nope"},
	}

	assert.Equal(t, 50, Score(questions, answers))
}

func TestScore_TwoOfThreeRoundsUp(t *testing.T) {
	questions := makeQuestions("a", "b", "c")
	answers := []models.Answer{
		{QuestionIndex: 0, Answer: "a"},
		{QuestionIndex: 1, Answer: "b"},
	}

	// round(200/3) = 67
	assert.Equal(t, 67, Score(questions, answers))
}

func TestScore_OutOfRangeIndicesIgnored(t *testing.T) {
	questions := makeQuestions("a", "b")
	answers := []models.Answer{
		{QuestionIndex: -1, Answer: "a"},
		{QuestionIndex: 5, Answer: "a"},
		{QuestionIndex: 1, Answer: "b"},
	}

	assert.Equal(t, 50, Score(questions, answers))
}

func TestScore_DuplicateIndicesCountOnce(t *testing.T) {
	questions := makeQuestions("a")
	answers := []models.Answer{
		{QuestionIndex: 0, Answer: "a"},
		{QuestionIndex: 0, Answer: "a"},
		{QuestionIndex: 0, Answer: "a"},
	}

	assert.Equal(t, 100, Score(questions, answers))
}

func TestScore_DuplicateIndicesStayBounded(t *testing.T) {
	questions := makeQuestions("a", "b")
	answers := []models.Answer{
		{QuestionIndex: 0, Answer: "a"},
		{QuestionIndex: 0, Answer: "a"},
	}

	// the repeated first question earns its 50 points once
	assert.Equal(t, 50, Score(questions, answers))
}

func TestScore_NoQuestions(t *testing.T) {
	answers := []models.Answer{{QuestionIndex: 0, Answer: "a"}}

	assert.Equal(t, 0, Score(nil, answers))
}

func TestScore_NoAnswers(t *testing.T) {
	questions := makeQuestions("a", "b")

	assert.Equal(t, 0, Score(questions, nil))
}

func TestValidateQuestions_Valid(t *testing.T) {
	questions := makeQuestions("a", "b")

	require.NoError(t, ValidateQuestions(questions))
}

func TestValidateQuestions_DefaultsType(t *testing.T) {
	questions := []models.Question{{
		QuestionText:  "Q",
		Options:       []string{"a"},
		CorrectAnswer: "a",
	}}

	require.NoError(t, ValidateQuestions(questions))
	assert.Equal(t, models.QuestionTypeMultipleChoice, questions[0].Type)
}

func TestValidateQuestions_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.Question
	}{
		{"empty list", nil},
		{"unknown type", []models.Question{{QuestionText: "Q", Type: "essay", Options: []string{"a"}, CorrectAnswer: "a"}}},
		{"missing text", []models.Question{{Options: []string{"a"}, CorrectAnswer: "a"}}},
		{"no options", []models.Question{{QuestionText: "Q", CorrectAnswer: "a"}}},
		{"no correct answer", []models.Question{{QuestionText: "Q", Options: []string{"a"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateQuestions(tt.questions))
		})
	}
}
