package models

import "time"

// OTPRequest holds the single outstanding challenge for an email. The unique
// index on email plus an upsert write path guarantee at most one row per
// address, so "the current code" is never ambiguous.
type OTPRequest struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	CodeHash  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
