package postgre

import (
	"strings"

	repo "catalog/internal/item/repository"
)

const selectColumns = `SELECT id, name, description, price, created_date FROM catalog_items`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery builds the full SELECT for GetItems.
// The name filter is matched literally, ignoring case.
func (r *implRepository) buildListQuery(f repo.Filter) (string, []any) {
	var parts []string
	var args []any

	parts = append(parts, selectColumns)
	if !f.IsEmpty() {
		parts = append(parts, `WHERE name ILIKE $1 ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(f.NameContains)+"%")
	}
	parts = append(parts, "ORDER BY created_date")

	return strings.Join(parts, " "), args
}
