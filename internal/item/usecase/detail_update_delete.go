package usecase

import (
	"context"

	"items-service/internal/item"
	repo "items-service/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailItemOutput, error) {
	it, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == 0 {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update overwrites title and description wholesale.
// Returns ErrItemNotFound when not found; no write is performed in that case.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	// Ensure item exists before writing
	existing, err := uc.repo.GetItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == 0 {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if it.ID == 0 {
		// Row vanished between lookup and write; last writer wins.
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// Delete removes an Item by ID and returns the entity as it existed
// immediately before deletion. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) (item.DeleteItemOutput, error) {
	existing, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetItem: %v", err)
		return item.DeleteItemOutput{}, err
	}
	if existing.ID == 0 {
		return item.DeleteItemOutput{}, item.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return item.DeleteItemOutput{}, err
	}
	return item.DeleteItemOutput{Item: existing}, nil
}
