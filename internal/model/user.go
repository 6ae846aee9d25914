package model

import "time"

// User represents a registered account. PasswordHash is persisted but never
// serialized into API responses.
type User struct {
	ID              string                 `bson:"id" json:"id"`
	Email           string                 `bson:"email" json:"email"`
	FullName        string                 `bson:"full_name" json:"full_name"`
	PasswordHash    string                 `bson:"password_hash" json:"-"`
	IsAdmin         bool                   `bson:"is_admin" json:"is_admin"`
	CreatedAt       time.Time              `bson:"created_at" json:"created_at"`
	EnrolledCourses []string               `bson:"enrolled_courses" json:"enrolled_courses"`
	Badges          []string               `bson:"badges" json:"badges"`
	Progress        map[string]interface{} `bson:"progress" json:"progress"`
}

// Enrolled reports whether the user already owns the given course.
func (u *User) Enrolled(courseID string) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
