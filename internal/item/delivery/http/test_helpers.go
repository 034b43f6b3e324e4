package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"items-service/internal/item"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock use case with function fields so each test injects behavior.
type mockUseCase struct {
	createFn func(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error)
	detailFn func(ctx context.Context, id int64) (item.DetailItemOutput, error)
	updateFn func(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error)
	deleteFn func(ctx context.Context, id int64) (item.DeleteItemOutput, error)
}

func (m *mockUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	return m.createFn(ctx, input)
}

func (m *mockUseCase) Detail(ctx context.Context, id int64) (item.DetailItemOutput, error) {
	return m.detailFn(ctx, id)
}

func (m *mockUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	return m.updateFn(ctx, input)
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) (item.DeleteItemOutput, error) {
	return m.deleteFn(ctx, id)
}

// newTestRouter wires the handler onto a bare engine, without the session
// middleware (covered by the middleware and flow tests).
func newTestRouter(uc item.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	items := r.Group("/items")
	{
		items.POST("/", h.Create)
		items.GET("/:item_id", h.Detail)
		items.PUT("/:item_id", h.Update)
		items.DELETE("/:item_id", h.Delete)
	}
	return r
}
