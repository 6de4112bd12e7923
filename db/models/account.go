package models

import "time"

// Account is one authenticated identity under management.
type Account struct {
	ID          uint  `gorm:"primaryKey"`
	AccountID   int64 `gorm:"uniqueIndex"`
	AccountName string
	Phone       string
	Username    string
	SessionFile string
	LastSync    time.Time
	IsActive    bool
	IsPrimary   bool
}

// Variable is one row of the persisted operator key/value table behind
// .setvar and .getvar.
type Variable struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex"`
	Value     string
	UpdatedAt time.Time
}
