package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("Technology"))
	assert.True(t, ValidCategory("Science & Math"))
	assert.True(t, ValidCategory("Other"))
	assert.False(t, ValidCategory("technology"))
	assert.False(t, ValidCategory("Cooking"))
	assert.False(t, ValidCategory(""))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("student"))
	assert.True(t, ValidRole("teacher"))
	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("tutor"))
	assert.False(t, ValidRole(""))
}

func TestCourseOwnershipAndMembership(t *testing.T) {
	teacher := primitive.NewObjectID()
	student := primitive.NewObjectID()
	course := Course{
		Teacher:  teacher,
		Students: []primitive.ObjectID{student},
	}

	assert.True(t, course.IsOwnedBy(teacher))
	assert.False(t, course.IsOwnedBy(student))
	assert.True(t, course.HasStudent(student))
	assert.False(t, course.HasStudent(teacher))
}
