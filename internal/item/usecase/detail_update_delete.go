package usecase

import (
	"context"

	"catalog/internal/item"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	it, found, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if !found {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update replaces the mutable fields of an existing Item.
// Returns ErrItemNotFound, without writing, when the Item does not exist.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) error {
	existing, found, err := uc.repo.GetItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetItem: %v", err)
		return err
	}
	if !found {
		return item.ErrItemNotFound
	}

	if err := uc.repo.UpdateItem(ctx, item.Merge(existing, input)); err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return err
	}
	return nil
}

// Delete removes an Item by ID.
// Returns ErrItemNotFound, without writing, when the Item does not exist.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	_, found, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetItem: %v", err)
		return err
	}
	if !found {
		return item.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
