package redis

import (
	"encoding/json"
	"time"

	"catalog/internal/item"
)

type itemDocument struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedDate time.Time `json:"createdDate"`
}

func encodeItem(it item.Item) ([]byte, error) {
	return json.Marshal(itemDocument{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		CreatedDate: it.CreatedDate.UTC(),
	})
}

func decodeItem(data []byte) (item.Item, error) {
	var d itemDocument
	if err := json.Unmarshal(data, &d); err != nil {
		return item.Item{}, err
	}
	return item.Item{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		CreatedDate: d.CreatedDate.UTC(),
	}, nil
}
