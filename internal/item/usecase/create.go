package usecase

import (
	"context"

	"items-service/internal/item"
	repo "items-service/internal/item/repository"
)

// Create persists a new Item and returns it with its assigned ID.
// No uniqueness is enforced on title.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: it}, nil
}
