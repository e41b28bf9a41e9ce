package usecase

import (
	"context"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

// List returns every Item whose name contains input.Name, ignoring case.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	items, err := uc.repo.GetItems(ctx, repo.Filter{NameContains: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List GetItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	uc.l.Infof(ctx, "uc.List: retrieved %d items", len(items))
	return item.ListItemsOutput{Items: items}, nil
}
