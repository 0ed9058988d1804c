package models

import "time"

// User is created lazily on the first successful OTP verification for an
// email. There is no password: proving control of the mailbox is the login.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Username  *string   `gorm:"uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}
