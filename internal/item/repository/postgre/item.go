package postgre

import (
	"context"
	"database/sql"

	"items-service/internal/item"
	repo "items-service/internal/item/repository"
)

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `
		INSERT INTO items (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description`

	var it item.Item
	err := r.q(ctx).QueryRowContext(ctx, query, opt.Title, opt.Description).Scan(
		&it.ID, &it.Title, &it.Description,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetItem retrieves a single Item by id.
// Returns zero-value Item (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetItem(ctx context.Context, id int64) (item.Item, error) {
	const query = `SELECT id, title, description FROM items WHERE id = $1`

	var it item.Item
	err := r.q(ctx).QueryRowContext(ctx, query, id).Scan(&it.ID, &it.Title, &it.Description)
	if err == sql.ErrNoRows {
		return item.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// UpdateItem overwrites an Item by ID and returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	const query = `
		UPDATE items
		SET title = $1, description = $2
		WHERE id = $3
		RETURNING id, title, description`

	var it item.Item
	err := r.q(ctx).QueryRowContext(ctx, query, opt.Title, opt.Description, opt.ID).Scan(
		&it.ID, &it.Title, &it.Description,
	)
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = $1`
	_, err := r.q(ctx).ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
