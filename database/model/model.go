package model

import "time"

// User is a registered account. Content rows reference it by numeric id;
// usernames are resolved at read time.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
}

// Mood is one mood submission. Rows are append-only.
type Mood struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int       `json:"-" gorm:"index;not null"`
	Mood      string    `json:"mood" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Chat is one chatbot exchange: what the user said and what was answered.
type Chat struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId      int       `json:"-" gorm:"index;not null"`
	UserMessage string    `json:"userMessage" gorm:"not null"`
	Reply       string    `json:"reply" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Booking is a counseling appointment request. Date and time are kept as the
// submitted form strings; nothing computes on them.
type Booking struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int       `json:"-" gorm:"index;not null"`
	Counselor string    `json:"counselor" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null"`
	Time      string    `json:"time" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a forum entry. Anonymous posts never expose their author.
type Post struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId      int       `json:"-" gorm:"index;not null"`
	Content     string    `json:"content" gorm:"not null"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
}
