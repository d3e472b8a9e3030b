package domain

import "time"

type BlogPost struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	DatePosted time.Time `json:"datePosted" gorm:"not null"`

	// A blog post belongs to exactly one user.
	UserID uint  `json:"userId" gorm:"index;not null"`
	User   *User `json:"user,omitempty"`
}
