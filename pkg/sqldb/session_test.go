package sqldb

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSessionProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire hands out a working session", func(t *testing.T) {
		p := NewSessionProvider(newTestDB(t))

		s, err := p.Acquire(ctx)
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		defer s.Close()

		var one int
		if err := s.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
			t.Fatalf("query through session: %v", err)
		}
		if one != 1 {
			t.Errorf("expected 1, got %d", one)
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		p := NewSessionProvider(newTestDB(t))

		s, err := p.Acquire(ctx)
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("first close: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Errorf("second close must be a no-op, got %v", err)
		}
	})

	t.Run("acquire fails when the store is unreachable", func(t *testing.T) {
		db := newTestDB(t)
		p := NewSessionProvider(db)
		db.Close()

		if _, err := p.Acquire(ctx); err == nil {
			t.Error("expected error from closed pool, got nil")
		}
	})
}

func TestSessionContext(t *testing.T) {
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		p := NewSessionProvider(newTestDB(t))
		s, err := p.Acquire(ctx)
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		defer s.Close()

		bound := WithSession(ctx, s)
		got, ok := SessionFromContext(bound)
		if !ok || got != s {
			t.Errorf("expected the bound session back, got %v (ok=%v)", got, ok)
		}
	})

	t.Run("querier falls back to the pool", func(t *testing.T) {
		db := newTestDB(t)

		if q := Querier(ctx, db); q != DBTX(db) {
			t.Errorf("expected pool fallback, got %T", q)
		}
	})

	t.Run("querier prefers the bound session", func(t *testing.T) {
		db := newTestDB(t)
		p := NewSessionProvider(db)
		s, err := p.Acquire(ctx)
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		defer s.Close()

		if q := Querier(WithSession(ctx, s), db); q != DBTX(s) {
			t.Errorf("expected bound session, got %T", q)
		}
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite", func(t *testing.T) {
		db, err := Open(ctx, Config{Driver: DriverSQLite, DSN: ":memory:"})
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer db.Close()

		var one int
		if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
			t.Fatalf("query: %v", err)
		}
	})

	t.Run("unsupported driver", func(t *testing.T) {
		if _, err := Open(ctx, Config{Driver: "oracle", DSN: "x"}); err == nil {
			t.Error("expected error for unsupported driver")
		}
	})
}
