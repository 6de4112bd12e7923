// Package accounts holds the account registry and the chat aggregation
// pipeline: it lists dialogs per registered session, normalizes the
// gateway's entity shapes into ChatRecord and persists snapshots.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/db"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/db/models"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
)

// Session is the slice of the transport a registered account needs.
type Session interface {
	GetMe(ctx context.Context) (telegram.User, error)
	ListDialogs(ctx context.Context, limit int) ([]telegram.Dialog, error)
}

// Registration is one authenticated identity under management.
type Registration struct {
	AccountID   int64
	Name        string
	Phone       string
	Username    string
	Session     Session
	SessionName string
	Primary     bool
}

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
	syncPageLimit    = 30
)

// Registry keeps the registered accounts in registration order. All
// registrations happen during startup, before the dispatch loop runs;
// afterwards the registry is only read, so there is no lock.
type Registry struct {
	store *db.Store
	log   *slog.Logger
	now   func() time.Time

	order    []int64
	accounts map[int64]*Registration
}

func NewRegistry(store *db.Store, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		store:    store,
		log:      log,
		now:      time.Now,
		accounts: map[int64]*Registration{},
	}
}

// Register adds a session to the registry, keyed by the identity the
// transport reports. Re-registering the same identity overwrites in
// place and keeps its position. The first registration is primary.
func (r *Registry) Register(ctx context.Context, session Session, sessionName, declaredName string) (int64, error) {
	if session == nil {
		return 0, fmt.Errorf("session is required")
	}
	me, err := session.GetMe(ctx)
	if err != nil {
		return 0, fmt.Errorf("get me: %w", err)
	}

	name := strings.TrimSpace(declaredName)
	if name == "" {
		name = strings.TrimSpace(me.FirstName)
	}
	if name == "" {
		name = "Main Account"
	}

	reg := &Registration{
		AccountID:   me.ID,
		Name:        name,
		Phone:       me.Phone,
		Username:    me.Username,
		Session:     session,
		SessionName: sessionName,
	}
	if existing, ok := r.accounts[me.ID]; ok {
		reg.Primary = existing.Primary
	} else {
		reg.Primary = len(r.order) == 0
		r.order = append(r.order, me.ID)
	}
	r.accounts[me.ID] = reg

	if r.store != nil {
		err := r.store.UpsertAccount(ctx, models.Account{
			AccountID:   me.ID,
			AccountName: name,
			Phone:       me.Phone,
			Username:    me.Username,
			SessionFile: sessionName,
			LastSync:    r.now().UTC(),
			IsActive:    true,
			IsPrimary:   reg.Primary,
		})
		if err != nil {
			return 0, fmt.Errorf("persist account: %w", err)
		}
	}

	r.log.Info("account registered",
		"account_id", me.ID,
		"name", name,
		"username", me.Username,
		"primary", reg.Primary)
	return me.ID, nil
}

// Accounts returns the registrations in registration order.
func (r *Registry) Accounts() []*Registration {
	out := make([]*Registration, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.accounts[id])
	}
	return out
}

// Account returns one registration by id.
func (r *Registry) Account(accountID int64) (*Registration, bool) {
	reg, ok := r.accounts[accountID]
	return reg, ok
}

// ListChats aggregates normalized chat records. A zero accountID spans
// every registered account, concatenated in registration order; limit
// bounds the page requested per account (clamped to 100), not the total.
// One account failing to list contributes zero records and does not
// abort the others.
func (r *Registry) ListChats(ctx context.Context, accountID int64, limit int) ([]ChatRecord, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	var ids []int64
	if accountID != 0 {
		if _, ok := r.accounts[accountID]; !ok {
			return nil, fmt.Errorf("unknown account: %d", accountID)
		}
		ids = []int64{accountID}
	} else {
		ids = r.order
	}

	var all []ChatRecord
	for _, id := range ids {
		reg := r.accounts[id]
		dialogs, err := reg.Session.ListDialogs(ctx, limit)
		if err != nil {
			r.log.Warn("dialog listing failed, skipping account",
				"account_id", id, "name", reg.Name, "error", err)
			continue
		}
		for _, d := range dialogs {
			all = append(all, recordFromDialog(id, reg.Name, d))
		}
		r.log.Debug("dialogs listed", "account_id", id, "count", len(dialogs))
	}
	return all, nil
}

// SyncToStore lists each account's chats and upserts them, stamping the
// account's last_sync. Returns the number of rows upserted across all
// accounts in this call. Per-account failures are skipped.
func (r *Registry) SyncToStore(ctx context.Context) (int, error) {
	if r.store == nil {
		return 0, fmt.Errorf("no store configured")
	}

	count := 0
	for _, id := range r.order {
		records, err := r.ListChats(ctx, id, syncPageLimit)
		if err != nil {
			r.log.Warn("sync skipped account", "account_id", id, "error", err)
			continue
		}
		now := r.now().UTC()
		for _, rec := range records {
			meta, _ := json.Marshal(rec)
			row := models.Chat{
				ChatID:            rec.ChatID,
				AccountID:         rec.AccountID,
				AccountName:       rec.AccountName,
				Title:             rec.Title,
				Username:          rec.Username,
				Kind:              string(rec.Kind),
				ParticipantsCount: rec.ParticipantsCount,
				UnreadCount:       rec.UnreadCount,
				UnreadMentions:    rec.UnreadMentions,
				LastMessageAt:     rec.LastMessageAt,
				Archived:          rec.Archived,
				Pinned:            rec.Pinned,
				LastAccessed:      now,
				Metadata:          string(meta),
			}
			if err := r.store.UpsertChat(ctx, row); err != nil {
				r.log.Warn("chat upsert failed", "chat_id", rec.ChatID, "account_id", rec.AccountID, "error", err)
				continue
			}
			count++
		}
		if err := r.store.TouchAccountSync(ctx, id, now); err != nil {
			r.log.Warn("last_sync stamp failed", "account_id", id, "error", err)
		}
	}
	return count, nil
}
