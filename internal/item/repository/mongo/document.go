package mongo

import (
	"time"

	"catalog/internal/item"
)

// itemDocument is the persisted shape of an Item.
type itemDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description,omitempty"`
	Price       float64   `bson:"price"`
	CreatedDate time.Time `bson:"createdDate"`
}

func toDocument(it item.Item) itemDocument {
	return itemDocument{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		CreatedDate: it.CreatedDate,
	}
}

func (d itemDocument) toItem() item.Item {
	return item.Item{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		CreatedDate: d.CreatedDate.UTC(),
	}
}
