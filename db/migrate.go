package db

import (
	"fmt"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/db/models"
	"gorm.io/gorm"
)

func AutoMigrate(gdb *gorm.DB) error {
	if gdb == nil {
		return fmt.Errorf("nil gorm db")
	}
	return gdb.AutoMigrate(
		&models.Chat{},
		&models.Account{},
		&models.Variable{},
	)
}
