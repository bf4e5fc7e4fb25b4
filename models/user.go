package models

import "time"

// User is a dashboard account. The API variant has no notion of users.
type User struct {
	ID           string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(100)" json:"-"`
	FullName     string     `gorm:"type:varchar(100)" json:"fullName"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
