package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store wraps the gorm handle with the few keyed writes the bot needs.
// Each upsert is a single statement; concurrent callers rely on sqlite's
// own transaction semantics, there is no versioning layer on top.
type Store struct {
	gdb *gorm.DB
}

func NewStore(gdb *gorm.DB) (*Store, error) {
	if gdb == nil {
		return nil, fmt.Errorf("nil gorm db")
	}
	return &Store{gdb: gdb}, nil
}

// UpsertChat inserts or overwrites the row keyed by (chat_id, account_id).
func (s *Store) UpsertChat(ctx context.Context, row models.Chat) error {
	if row.ChatID == 0 || row.AccountID == 0 {
		return fmt.Errorf("chat_id and account_id are required")
	}
	return s.gdb.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "chat_id"}, {Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"account_name", "title", "username", "kind",
			"participants_count", "unread_count", "unread_mentions",
			"last_message_at", "archived", "pinned", "deleted",
			"last_accessed", "metadata",
		}),
	}).Create(&row).Error
}

// UpsertAccount inserts or overwrites the row keyed by account_id.
func (s *Store) UpsertAccount(ctx context.Context, row models.Account) error {
	if row.AccountID == 0 {
		return fmt.Errorf("account_id is required")
	}
	return s.gdb.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"account_name", "phone", "username", "session_file",
			"last_sync", "is_active", "is_primary",
		}),
	}).Create(&row).Error
}

// TouchAccountSync stamps last_sync for one account.
func (s *Store) TouchAccountSync(ctx context.Context, accountID int64, at time.Time) error {
	return s.gdb.WithContext(ctx).
		Model(&models.Account{}).
		Where("account_id = ?", accountID).
		Update("last_sync", at).Error
}

// CountChats returns the number of persisted chat rows.
func (s *Store) CountChats(ctx context.Context) (int64, error) {
	var n int64
	err := s.gdb.WithContext(ctx).Model(&models.Chat{}).Count(&n).Error
	return n, err
}

// SetVariable inserts or overwrites one operator variable.
func (s *Store) SetVariable(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("variable key is required")
	}
	row := models.Variable{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.gdb.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// GetVariable reads one operator variable; ok reports whether it is set.
func (s *Store) GetVariable(ctx context.Context, key string) (string, bool, error) {
	var row models.Variable
	err := s.gdb.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}
