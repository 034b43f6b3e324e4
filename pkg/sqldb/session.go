package sqldb

import (
	"context"
	"database/sql"
	"sync"
)

// Session is a single database connection bound to one request.
// It is acquired before the handler runs and released exactly once after,
// regardless of how the request path exits.
type Session struct {
	conn *sql.Conn

	closeOnce sync.Once
	closeErr  error
}

func (s *Session) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.conn.ExecContext(ctx, query, args...)
}

func (s *Session) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.conn.QueryContext(ctx, query, args...)
}

func (s *Session) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.conn.QueryRowContext(ctx, query, args...)
}

// Close returns the connection to the pool. Safe to call more than once;
// only the first call releases.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

// SessionProvider hands out one Session per request from the pool.
type SessionProvider struct {
	db *sql.DB
}

// NewSessionProvider creates a SessionProvider over the store.
func NewSessionProvider(db *sql.DB) *SessionProvider {
	if db == nil {
		panic("sqldb: db is required")
	}
	return &SessionProvider{db: db}
}

// Acquire checks a connection out of the pool. Fails when the store is
// unreachable; nothing is released in that case.
func (p *SessionProvider) Acquire(ctx context.Context) (*Session, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{conn: conn}, nil
}

type ctxKey int

const sessionKey ctxKey = iota

// WithSession returns a context carrying the request's session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session stored in ctx, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}

// Querier returns the request's session when one is bound to ctx,
// falling back to the shared pool otherwise.
func Querier(ctx context.Context, db *sql.DB) DBTX {
	if s, ok := SessionFromContext(ctx); ok {
		return s
	}
	return db
}
