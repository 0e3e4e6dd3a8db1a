package postgres

// sortColumn maps a caller-supplied sort key to a known column. Anything
// unknown falls back to created_at; column names are never interpolated
// straight from input.
func sortColumn(sortBy string) string {
	switch sortBy {
	case "username", "name", "title", "status", "created_at", "updated_at":
		return sortBy
	case "createdAt":
		return "created_at"
	case "updatedAt":
		return "updated_at"
	default:
		return "created_at"
	}
}

func sortDirection(sort string) string {
	if sort == "asc" {
		return "ASC"
	}
	return "DESC"
}
