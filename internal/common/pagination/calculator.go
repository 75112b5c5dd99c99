package pagination

// CalculateOffset calculates the database OFFSET value for a 1-based page.
//
// Formula: offset = (page - 1) * limit
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}
