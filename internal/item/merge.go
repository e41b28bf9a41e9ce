package item

// Merge returns the record an update should persist: the mutable fields
// (Name, Description, Price) come from in, while ID and CreatedDate always
// come from existing. An empty Description in the input clears it.
func Merge(existing Item, in UpdateItemInput) Item {
	return Item{
		ID:          existing.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CreatedDate: existing.CreatedDate,
	}
}
