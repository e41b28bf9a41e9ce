package repository

import (
	"strings"

	"catalog/internal/item"
)

// Filter selects items for GetItems. The zero value matches everything.
type Filter struct {
	// NameContains keeps items whose name contains it, ignoring case.
	NameContains string
}

// IsEmpty reports whether f matches every item.
func (f Filter) IsEmpty() bool {
	return f.NameContains == ""
}

// Match applies f in process. Backends without a server-side substring
// query use it directly; the others must agree with it.
func (f Filter) Match(it item.Item) bool {
	if f.NameContains == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.NameContains))
}
