package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseCategory string

const (
	CategoryTechnology CourseCategory = "Technology"
	CategoryScience    CourseCategory = "Science & Math"
	CategoryBusiness   CourseCategory = "Business"
	CategoryArts       CourseCategory = "Arts & Humanities"
	CategoryHealth     CourseCategory = "Health & Lifestyle"
	CategoryEducation  CourseCategory = "Education"
	CategoryLanguage   CourseCategory = "Language"
	CategoryOther      CourseCategory = "Other"
)

// ValidCategory reports whether s is a member of the closed category enum.
func ValidCategory(s string) bool {
	switch CourseCategory(s) {
	case CategoryTechnology, CategoryScience, CategoryBusiness, CategoryArts,
		CategoryHealth, CategoryEducation, CategoryLanguage, CategoryOther:
		return true
	}
	return false
}

type Lecture struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	YoutubeLink string `json:"youtube_link" bson:"youtube_link"`
}

type Course struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description" bson:"description"`
	Category    CourseCategory       `json:"category" bson:"category"`
	Teacher     primitive.ObjectID   `json:"teacher" bson:"teacher"`
	Students    []primitive.ObjectID `json:"students" bson:"students"`
	Lectures    []Lecture            `json:"lectures" bson:"lectures"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
}

// IsOwnedBy reports whether the course's teacher reference matches id.
func (c *Course) IsOwnedBy(id primitive.ObjectID) bool {
	return c.Teacher == id
}

// HasStudent reports whether id appears in the enrolled-student set.
func (c *Course) HasStudent(id primitive.ObjectID) bool {
	for _, s := range c.Students {
		if s == id {
			return true
		}
	}
	return false
}
