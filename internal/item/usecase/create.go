package usecase

import (
	"context"

	"catalog/internal/item"
)

// Create assigns a new id and creation date, then persists the Item.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	it := item.Item{
		ID:          uc.newID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CreatedDate: uc.now(),
	}

	if err := uc.repo.CreateItem(ctx, it); err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: it}, nil
}
