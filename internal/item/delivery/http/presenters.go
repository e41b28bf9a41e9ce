package http

import (
	"fmt"
	"strings"
	"time"

	"catalog/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"        binding:"required,max=255"`
	Description string  `json:"description" binding:"max=1000"`
	Price       float64 `json:"price"       binding:"required,gte=1,lte=1000"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", item.ErrInvalidPayload)
	}
	return nil
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

// ---

type listReq struct {
	Name string `form:"name"`
}

func (r listReq) toInput() item.ListItemsInput {
	return item.ListItemsInput{Name: r.Name}
}

// ---

// updateReq carries the full set of mutable fields; omitted description clears it.
type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Name        string  `json:"name"        binding:"required,max=255"`
	Description string  `json:"description" binding:"max=1000"`
	Price       float64 `json:"price"       binding:"required,gte=1,lte=1000"`
}

func (r updateReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", item.ErrInvalidPayload)
	}
	return nil
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedDate time.Time `json:"createdDate"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		CreatedDate: it.CreatedDate,
	}
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}
