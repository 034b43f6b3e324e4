package sqlite

import (
	"context"
	"database/sql"

	"items-service/internal/item"
	repo "items-service/internal/item/repository"
)

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `INSERT INTO items (title, description) VALUES (?, ?)`

	res, err := r.q(ctx).ExecContext(ctx, query, opt.Title, opt.Description)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	return item.Item{ID: id, Title: opt.Title, Description: opt.Description}, nil
}

// GetItem retrieves a single Item by id.
// Returns zero-value Item (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetItem(ctx context.Context, id int64) (item.Item, error) {
	const query = `SELECT id, title, description FROM items WHERE id = ?`

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
	const query = `UPDATE items SET title = ?, description = ? WHERE id = ?`

	res, err := r.q(ctx).ExecContext(ctx, query, opt.Title, opt.Description, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return item.Item{}, nil
	}

	return item.Item{ID: opt.ID, Title: opt.Title, Description: opt.Description}, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = ?`
	if _, err := r.q(ctx).ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
