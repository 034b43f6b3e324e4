package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"items-service/internal/item"
)

func TestCreateHandler(t *testing.T) {
	t.Run("returns 201 with the created item as the body", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
				return item.CreateItemOutput{Item: item.Item{ID: 1, Title: input.Title, Description: input.Description}}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"title":"A","description":"B"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got itemResp
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.ID != 1 || got.Title != "A" || got.Description != "B" {
			t.Errorf("unexpected body: %+v", got)
		}
	})

	t.Run("missing title is rejected before the use case runs", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
				t.Error("use case must not be called on malformed input")
				return item.CreateItemOutput{}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"description":"B"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("omitted description defaults to empty", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
				if input.Description != "" {
					t.Errorf("expected empty description, got %q", input.Description)
				}
				return item.CreateItemOutput{Item: item.Item{ID: 2, Title: input.Title}}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"title":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("expected 201, got %d", w.Code)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	t.Run("returns the item", func(t *testing.T) {
		uc := &mockUseCase{
			detailFn: func(ctx context.Context, id int64) (item.DetailItemOutput, error) {
				return item.DetailItemOutput{Item: item.Item{ID: id, Title: "A", Description: "B"}}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/7", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got itemResp
		json.Unmarshal(w.Body.Bytes(), &got)
		if got.ID != 7 {
			t.Errorf("expected id 7, got %d", got.ID)
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		uc := &mockUseCase{
			detailFn: func(ctx context.Context, id int64) (item.DetailItemOutput, error) {
				return item.DetailItemOutput{}, item.ErrItemNotFound
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-integer id is a client error", func(t *testing.T) {
		uc := &mockUseCase{
			detailFn: func(ctx context.Context, id int64) (item.DetailItemOutput, error) {
				t.Error("use case must not be called for a bad path param")
				return item.DetailItemOutput{}, nil
			},
		}
		r := newTestRouter(uc)

		for _, raw := range []string{"abc", "-1", "0"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+raw, nil))
			if w.Code != http.StatusBadRequest {
				t.Errorf("item_id=%q: expected 400, got %d", raw, w.Code)
			}
		}
	})

	t.Run("unexpected errors map to an opaque 500", func(t *testing.T) {
		uc := &mockUseCase{
			detailFn: func(ctx context.Context, id int64) (item.DetailItemOutput, error) {
				return item.DetailItemOutput{}, context.DeadlineExceeded
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/1", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "deadline") {
			t.Error("internal error details leaked to the client")
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("passes the full replacement to the use case", func(t *testing.T) {
		uc := &mockUseCase{
			updateFn: func(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
				if input.ID != 3 || input.Title != "X" || input.Description != "" {
					t.Errorf("unexpected input: %+v", input)
				}
				return item.UpdateItemOutput{Item: item.Item{ID: input.ID, Title: input.Title, Description: input.Description}}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/items/3", strings.NewReader(`{"title":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		uc := &mockUseCase{
			updateFn: func(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
				return item.UpdateItemOutput{}, item.ErrItemNotFound
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/items/99", strings.NewReader(`{"title":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		uc := &mockUseCase{
			updateFn: func(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
				t.Error("use case must not be called on malformed input")
				return item.UpdateItemOutput{}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/items/3", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("returns the pre-delete snapshot", func(t *testing.T) {
		uc := &mockUseCase{
			deleteFn: func(ctx context.Context, id int64) (item.DeleteItemOutput, error) {
				return item.DeleteItemOutput{Item: item.Item{ID: id, Title: "A", Description: "B"}}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/items/5", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got itemResp
		json.Unmarshal(w.Body.Bytes(), &got)
		if got.ID != 5 || got.Title != "A" {
			t.Errorf("unexpected snapshot: %+v", got)
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		uc := &mockUseCase{
			deleteFn: func(ctx context.Context, id int64) (item.DeleteItemOutput, error) {
				return item.DeleteItemOutput{}, item.ErrItemNotFound
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/items/42", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
