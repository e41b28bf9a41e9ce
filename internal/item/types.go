package item

import "time"

// --- Item Domain Model ---

// Item is a catalog entry. ID and CreatedDate are assigned once on creation.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       float64
	CreatedDate time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	Price       float64
}

// ListItemsInput filters the listing. An empty Name matches every item.
type ListItemsInput struct {
	Name string
}

type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}
