package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anupks5942/lms-backend/internal/apperr"
	"github.com/anupks5942/lms-backend/internal/models"
)

func TestTargetNotFoundMessages(t *testing.T) {
	assert.Equal(t, "Assignment not found or unauthorized",
		apperr.PublicMessage(targetNotFound(models.GradeTargetAssignment)))
	assert.Equal(t, "Quiz not found or unauthorized",
		apperr.PublicMessage(targetNotFound(models.GradeTargetQuiz)))
}

func TestParseOptionalID(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := parseOptionalID(id.Hex(), "assignment")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	parsed, err = parseOptionalID("", "assignment")
	require.NoError(t, err)
	assert.Equal(t, primitive.NilObjectID, parsed)

	_, err = parseOptionalID("not-hex", "quiz")
	assert.Error(t, err)
}

func TestParseDueDate(t *testing.T) {
	parsed, err := parseDueDate("2026-10-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC), parsed)

	parsed, err = parseDueDate("2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = parseDueDate("")
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())

	_, err = parseDueDate("next tuesday")
	assert.Error(t, err)
}

func TestValidateLecture(t *testing.T) {
	assert.NoError(t, validateLecture(models.Lecture{
		Title:       "Intro",
		YoutubeLink: "https://youtu.be/abc123",
	}))
	assert.Error(t, validateLecture(models.Lecture{
		YoutubeLink: "https://youtu.be/abc123",
	}))
	assert.Error(t, validateLecture(models.Lecture{
		Title:       "Intro",
		YoutubeLink: "https://vimeo.com/abc123",
	}))
}
