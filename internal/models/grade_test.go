package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewGradeTarget_Assignment(t *testing.T) {
	id := primitive.NewObjectID()

	target, err := NewGradeTarget(id, primitive.NilObjectID)
	require.NoError(t, err)
	assert.Equal(t, GradeTargetAssignment, target.Kind)
	assert.Equal(t, id, target.ID)
}

func TestNewGradeTarget_Quiz(t *testing.T) {
	id := primitive.NewObjectID()

	target, err := NewGradeTarget(primitive.NilObjectID, id)
	require.NoError(t, err)
	assert.Equal(t, GradeTargetQuiz, target.Kind)
	assert.Equal(t, id, target.ID)
}

func TestNewGradeTarget_Neither(t *testing.T) {
	_, err := NewGradeTarget(primitive.NilObjectID, primitive.NilObjectID)
	assert.Error(t, err)
}

func TestNewGradeTarget_Both(t *testing.T) {
	_, err := NewGradeTarget(primitive.NewObjectID(), primitive.NewObjectID())
	assert.Error(t, err)
}

func TestGradeTargetValidate(t *testing.T) {
	valid := GradeTarget{Kind: GradeTargetQuiz, ID: primitive.NewObjectID()}
	assert.NoError(t, valid.Validate())

	badKind := GradeTarget{Kind: "exam", ID: primitive.NewObjectID()}
	assert.Error(t, badKind.Validate())

	noID := GradeTarget{Kind: GradeTargetAssignment}
	assert.Error(t, noID.Validate())
}
