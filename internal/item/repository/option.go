package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Title       string
	Description string
}

// UpdateItemOptions holds parameters for overwriting an existing Item.
// Both fields are written unconditionally; update is a full replace.
type UpdateItemOptions struct {
	ID          int64
	Title       string
	Description string
}
