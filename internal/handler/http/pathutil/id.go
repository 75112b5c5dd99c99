// Package pathutil parses path parameters and normalizes paths for
// metrics labels.
package pathutil

import (
	"strconv"

	"newsboard/internal/domain/entity"
)

// ParseID parses a numeric path parameter. Anything the store would
// reject as a malformed integer is rejected here with the same 400.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, entity.ErrBadRequest
	}
	return id, nil
}
