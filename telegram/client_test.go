package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientCallDecodesEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.HasPrefix(r.URL.Path, "/session/kira_v1/") {
			t.Errorf("path = %s, want session-scoped", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":     true,
			"result": map[string]any{"id": 777, "first_name": "Kira", "username": "kira"},
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL, "secret-token", "kira_v1")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	me, err := client.GetMe(context.Background())
	if err != nil {
		t.Fatalf("GetMe() error = %v", err)
	}
	if me.ID != 777 || me.Username != "kira" {
		t.Fatalf("GetMe() = %+v", me)
	}
}

func TestClientCallOKFalse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":          false,
			"error_code":  403,
			"description": "CHAT_ADMIN_REQUIRED",
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL, "secret-token", "kira_v1")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	err = client.PinMessage(context.Background(), 1, 2)
	if err == nil || !strings.Contains(err.Error(), "CHAT_ADMIN_REQUIRED") {
		t.Fatalf("PinMessage() error = %v, want description surfaced", err)
	}
}

func TestClientCallHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL, "secret-token", "kira_v1")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	_, err = client.GetMe(context.Background())
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("GetMe() error = %v, want http 502", err)
	}
}

func TestGetUpdatesAdvancesOffset(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"result": []map[string]any{
				{"update_id": 10, "message": map[string]any{"id": 1, "chat_id": 5, "text": ".ping"}},
				{"update_id": 12, "message": map[string]any{"id": 2, "chat_id": 5, "text": ".alive"}},
			},
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL, "secret-token", "kira_v1")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	updates, next, err := client.GetUpdates(context.Background(), 0, time.Second)
	if err != nil {
		t.Fatalf("GetUpdates() error = %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("len(updates) = %d, want 2", len(updates))
	}
	if next != 13 {
		t.Fatalf("next offset = %d, want 13", next)
	}
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(nil, "", "t", "s"); err == nil {
		t.Fatal("NewClient() without base url: want error")
	}
	if _, err := NewClient(nil, "http://localhost", "", "s"); err == nil {
		t.Fatal("NewClient() without token: want error")
	}
	if _, err := NewClient(nil, "http://localhost", "t", ""); err == nil {
		t.Fatal("NewClient() without session: want error")
	}
}
