package log

import (
	"context"
	"testing"
)

func TestRequestIDContext(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "abc-123")
		if got := RequestIDFromContext(ctx); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
	})

	t.Run("absent id is empty", func(t *testing.T) {
		if got := RequestIDFromContext(context.Background()); got != "" {
			t.Errorf("expected empty id, got %q", got)
		}
	})
}
