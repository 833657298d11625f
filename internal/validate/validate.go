// Package validate centralizes request-payload validation. Payloads are
// validated explicitly before any persistence call; the document store is
// never relied on to enforce field constraints.
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/anupks5942/lms-backend/internal/apperr"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// lectureLinkRe mirrors the pattern lecture links must satisfy.
var lectureLinkRe = regexp.MustCompile(`^https?://(www\.)?(youtube\.com|youtu\.be)/.+$`)

// Struct runs tag-based validation and converts failures into a single
// validation error naming the first offending field.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return apperr.Validation("Invalid value for field %s", errs[0].Field())
	}
	return apperr.Validation("Invalid request payload")
}

// LectureLink reports whether link is an acceptable lecture video URL.
func LectureLink(link string) bool {
	return lectureLinkRe.MatchString(link)
}
