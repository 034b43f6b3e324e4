package repository

import (
	"context"

	"items-service/internal/item"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Lookups return a zero-value Item (ID == 0) when no row matches; callers
// translate that into the domain not-found error.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetItem(ctx context.Context, id int64) (item.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
