package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"cricket-data-service/internal/domain/users"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &users.User{
		ID:           "u1",
		Name:         "Asha",
		Email:        "Asha@Example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.Email != "asha@example.com" {
		t.Fatalf("expected email case-folded on insert, got %q", u.Email)
	}

	got, err := s.GetUserByEmail(ctx, "ASHA@example.COM")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != "u1" || got.Name != "Asha" || got.PasswordHash != "hash" {
		t.Fatalf("unexpected user %+v", got)
	}

	byID, err := s.GetUserByID(ctx, "u1")
	if err != nil || byID.Email != "asha@example.com" {
		t.Fatalf("get by id: %+v err=%v", byID, err)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &users.User{ID: "u1", Name: "A", Email: "same@example.com", PasswordHash: "h"}
	if err := s.CreateUser(ctx, first); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Same address with different casing hits the unique index.
	dup := &users.User{ID: "u2", Name: "B", Email: "Same@Example.com", PasswordHash: "h"}
	if err := s.CreateUser(ctx, dup); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	if n, _ := s.CountUsers(ctx); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetUserByEmail(ctx, "missing@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.GetUserByID(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
