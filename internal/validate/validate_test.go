package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLectureLink(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://youtube.com/watch?v=abc123",
		"http://youtu.be/abc123",
		"https://youtu.be/abc123",
	}
	for _, link := range valid {
		assert.True(t, LectureLink(link), link)
	}

	invalid := []string{
		"",
		"https://vimeo.com/12345",
		"youtube.com/watch?v=abc123",
		"ftp://youtube.com/watch",
		"https://youtube.com/",
	}
	for _, link := range invalid {
		assert.False(t, LectureLink(link), link)
	}
}

func TestStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	assert.NoError(t, Struct(payload{Email: "a@b.com", Name: "x"}))
	assert.Error(t, Struct(payload{Email: "not-an-email", Name: "x"}))
	assert.Error(t, Struct(payload{Email: "a@b.com"}))
}
