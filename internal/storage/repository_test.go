package storage

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/core"
)

func TestCredentialsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())

	creds, err := repo.LoadCredentials(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if creds != nil {
		t.Fatalf("expected nil before first save, got %v", creds)
	}

	in := []Credential{{ID: "u1", Name: "Ada", Grade: core.Grade11, Email: "ada@example.com", PasswordHash: "$2a$10$x"}}
	if err := repo.SaveCredentials(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := repo.LoadCredentials(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].Email != "ada@example.com" || out[0].PasswordHash != "$2a$10$x" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if u := out[0].User(); u.Email != "ada@example.com" || u.ID != "u1" {
		t.Fatalf("stripped user mismatch: %+v", u)
	}
}

func TestSessionPointer(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())

	u, err := repo.LoadSession(ctx)
	if err != nil || u != nil {
		t.Fatalf("expected no session, got %v (err=%v)", u, err)
	}

	if err := repo.SaveSession(ctx, core.User{ID: "u1", Name: "Ada", Grade: core.Grade9, Email: "a@b.c"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	u, err = repo.LoadSession(ctx)
	if err != nil || u == nil || u.ID != "u1" {
		t.Fatalf("expected session for u1, got %v (err=%v)", u, err)
	}

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	u, err = repo.LoadSession(ctx)
	if err != nil || u != nil {
		t.Fatalf("expected cleared session, got %v (err=%v)", u, err)
	}
}

func TestDeltaRoundTripCoercesAmount(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	repo := NewRepository(kv)

	_, found, err := repo.LoadDelta(ctx, "u1")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if found {
		t.Fatalf("expected missing delta")
	}

	// Amounts may come back string-typed from storage; the decode must
	// still produce numeric cents.
	stored := `[{"id":"t1","amount":"45.50","type":"expense","category":"Food","date":"2025-03-02","description":"Groceries"}]`
	if err := kv.Put(ctx, DeltaKey("u1"), []byte(stored)); err != nil {
		t.Fatalf("put: %v", err)
	}
	txs, found, err := repo.LoadDelta(ctx, "u1")
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(txs) != 1 || txs[0].Amount.Cents != 4550 {
		t.Fatalf("expected 4550 cents, got %+v", txs)
	}
}

func TestDeltaIsScopedPerUser(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())

	tx := core.Transaction{ID: "t1", Amount: core.Money{Cents: 100}, Type: core.Income, Category: core.Work, Date: core.NewDate(2025, 3, 1), Description: "pay"}
	if err := repo.SaveDelta(ctx, "alice", []core.Transaction{tx}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.ClearDelta(ctx, "bob"); err != nil {
		t.Fatalf("clear other user: %v", err)
	}
	txs, found, err := repo.LoadDelta(ctx, "alice")
	if err != nil || !found || len(txs) != 1 {
		t.Fatalf("alice's delta should survive bob's logout: found=%v err=%v txs=%v", found, err, txs)
	}
}

func TestMalformedDataFailsFast(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	repo := NewRepository(kv)

	cases := []struct {
		key  string
		load func() error
	}{
		{KeyUsers, func() error { _, err := repo.LoadCredentials(ctx); return err }},
		{KeySession, func() error { _, err := repo.LoadSession(ctx); return err }},
		{DeltaKey("u1"), func() error { _, _, err := repo.LoadDelta(ctx, "u1"); return err }},
	}
	for _, tc := range cases {
		if err := kv.Put(ctx, tc.key, []byte(`{"not":"an array"`)); err != nil {
			t.Fatalf("put: %v", err)
		}
		err := tc.load()
		if err == nil {
			t.Fatalf("%s: expected decode error", tc.key)
		}
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", tc.key, err)
		}
	}
}
