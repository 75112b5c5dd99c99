package pagination

import (
	"net/http"
	"strconv"

	"newsboard/internal/domain/entity"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQueryParams parses page and limit from the request query string,
// applying the configured defaults when a parameter is absent.
//
// A parameter that is present must pass the positive-integer check — the
// failure embeds the raw literal ("abc value is invalid") and carries
// status 400. A key supplied without a value ("?page=") is present and
// fails the same way. Values above Config.MaxLimit are NOT rejected here;
// the listing service decides that against the filtered set size.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	query := r.URL.Query()

	if query.Has("page") {
		raw := query.Get("page")
		if err := entity.ValidatePositiveInteger(raw); err != nil {
			return params, err
		}
		params.Page, _ = strconv.Atoi(raw)
	}

	if query.Has("limit") {
		raw := query.Get("limit")
		if err := entity.ValidatePositiveInteger(raw); err != nil {
			return params, err
		}
		params.Limit, _ = strconv.Atoi(raw)
	}

	return params, nil
}
