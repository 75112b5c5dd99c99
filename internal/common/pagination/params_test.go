package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
		wantErr   string
	}{
		{
			name:      "defaults when absent",
			url:       "/api/articles",
			wantPage:  1,
			wantLimit: 10,
		},
		{
			name:      "explicit page and limit",
			url:       "/api/articles?page=3&limit=25",
			wantPage:  3,
			wantLimit: 25,
		},
		{
			name:      "limit above ceiling is accepted here",
			url:       "/api/articles?limit=51",
			wantPage:  1,
			wantLimit: 51,
		},
		{
			name:    "non-numeric page",
			url:     "/api/articles?page=abc",
			wantErr: "abc value is invalid",
		},
		{
			name:    "zero limit",
			url:     "/api/articles?limit=0",
			wantErr: "0 value is invalid",
		},
		{
			name:    "negative page",
			url:     "/api/articles?page=-3",
			wantErr: "-3 value is invalid",
		},
		{
			name:    "float limit",
			url:     "/api/articles?limit=2.5",
			wantErr: "2.5 value is invalid",
		},
		{
			name:    "present but empty page",
			url:     "/api/articles?page=",
			wantErr: " value is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			params, err := ParseQueryParams(r, cfg)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("err=%v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("err=%v", err)
			}
			if params.Page != tt.wantPage || params.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					params.Page, params.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 5, 10},
		{10, 50, 450},
	}
	for _, tt := range tests {
		if got := CalculateOffset(tt.page, tt.limit); got != tt.want {
			t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}
