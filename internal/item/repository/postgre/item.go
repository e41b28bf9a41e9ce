package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (item.Item, error) {
	var it item.Item
	if err := s.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.CreatedDate); err != nil {
		return item.Item{}, err
	}
	it.CreatedDate = it.CreatedDate.UTC()
	return it, nil
}

// GetItem retrieves a single Item by id. A miss is (zero, false, nil).
func (r *implRepository) GetItem(ctx context.Context, id string) (item.Item, bool, error) {
	const query = selectColumns + ` WHERE id = $1`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return item.Item{}, false, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return it, true, nil
}

// GetItems returns all Items matching f.
func (r *implRepository) GetItems(ctx context.Context, f repo.Filter) ([]item.Item, error) {
	query, args := r.buildListQuery(f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	items := []item.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("GetItems"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("GetItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return items, nil
}

// CreateItem inserts a new row keyed by it.ID.
func (r *implRepository) CreateItem(ctx context.Context, it item.Item) error {
	const query = `
		INSERT INTO catalog_items (id, name, description, price, created_date)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, it.ID, it.Name, it.Description, it.Price, it.CreatedDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repo.ErrDuplicateID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return nil
}

// UpdateItem overwrites every column of the row with it.ID.
func (r *implRepository) UpdateItem(ctx context.Context, it item.Item) error {
	const query = `
		UPDATE catalog_items
		SET name = $1, description = $2, price = $3, created_date = $4
		WHERE id = $5`

	_, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.Price, it.CreatedDate, it.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	return nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM catalog_items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", repo.ErrUnavailable, err)
	}
	return nil
}
