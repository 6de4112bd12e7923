package db

import (
	"context"
	"testing"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/db/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := AutoMigrate(gdb); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	store, err := NewStore(gdb)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func TestUpsertChatKeyedByChatAndAccount(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	row := models.Chat{
		ChatID:      100,
		AccountID:   1,
		AccountName: "Main",
		Title:       "Old Title",
		Kind:        "group",
		UnreadCount: 3,
	}
	if err := store.UpsertChat(ctx, row); err != nil {
		t.Fatalf("UpsertChat() error = %v", err)
	}

	// Same key overwrites in place.
	row.Title = "New Title"
	row.UnreadCount = 5
	if err := store.UpsertChat(ctx, row); err != nil {
		t.Fatalf("UpsertChat() second error = %v", err)
	}

	// Same chat_id under another account is a distinct row.
	other := row
	other.AccountID = 2
	if err := store.UpsertChat(ctx, other); err != nil {
		t.Fatalf("UpsertChat() other account error = %v", err)
	}

	n, err := store.CountChats(ctx)
	if err != nil {
		t.Fatalf("CountChats() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("CountChats() = %d, want 2", n)
	}
}

func TestUpsertChatRequiresKey(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.UpsertChat(context.Background(), models.Chat{ChatID: 1}); err == nil {
		t.Fatal("UpsertChat() without account_id: want error")
	}
}

func TestUpsertAccountIdempotent(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	acc := models.Account{AccountID: 42, AccountName: "Main", IsPrimary: true}
	if err := store.UpsertAccount(ctx, acc); err != nil {
		t.Fatalf("UpsertAccount() error = %v", err)
	}
	acc.AccountName = "Renamed"
	if err := store.UpsertAccount(ctx, acc); err != nil {
		t.Fatalf("UpsertAccount() second error = %v", err)
	}

	at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if err := store.TouchAccountSync(ctx, 42, at); err != nil {
		t.Fatalf("TouchAccountSync() error = %v", err)
	}
}

func TestVariables(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.GetVariable(ctx, "missing"); err != nil || ok {
		t.Fatalf("GetVariable(missing) = ok=%v err=%v, want unset", ok, err)
	}
	if err := store.SetVariable(ctx, "mode", "quiet"); err != nil {
		t.Fatalf("SetVariable() error = %v", err)
	}
	if err := store.SetVariable(ctx, "mode", "loud"); err != nil {
		t.Fatalf("SetVariable() overwrite error = %v", err)
	}
	got, ok, err := store.GetVariable(ctx, "mode")
	if err != nil {
		t.Fatalf("GetVariable() error = %v", err)
	}
	if !ok || got != "loud" {
		t.Fatalf("GetVariable() = %q ok=%v, want loud", got, ok)
	}
}
