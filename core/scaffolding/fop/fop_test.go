package fop

import "testing"

func TestParseOrder(t *testing.T) {
	allowed := map[string]string{
		"createdAt": "created_at",
		"status":    "status",
		"title":     "title",
	}
	defaultBy := NewBy("created_at", DESC)

	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      By
		wantErr   bool
	}{
		{"empty falls back to default", "", "desc", defaultBy, false},
		{"allowed field ascending", "title", "", NewBy("title", ASC), false},
		{"allowed field descending", "status", "desc", NewBy("status", DESC), false},
		{"unknown order ascends", "createdAt", "sideways", NewBy("created_at", ASC), false},
		{"unknown field rejected", "password_hash", "asc", By{}, true},
		{"case sensitive field", "CreatedAt", "", By{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrder(allowed, tt.sortBy, tt.sortOrder, defaultBy)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name       string
		pageNumber string
		pageLimit  string
		want       Page
	}{
		{"defaults", "", "", Page{Number: 1, Limit: 10}},
		{"explicit values", "3", "25", Page{Number: 3, Limit: 25}},
		{"non numeric falls back", "abc", "xyz", Page{Number: 1, Limit: 10}},
		{"zero falls back", "0", "0", Page{Number: 1, Limit: 10}},
		{"negative falls back", "-2", "-5", Page{Number: 1, Limit: 10}},
		{"mixed", "2", "junk", Page{Number: 2, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePage(tt.pageNumber, tt.pageLimit)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		page Page
		want int
	}{
		{Page{Number: 1, Limit: 10}, 0},
		{Page{Number: 2, Limit: 10}, 10},
		{Page{Number: 4, Limit: 25}, 75},
	}

	for _, tt := range tests {
		if got := tt.page.Offset(); got != tt.want {
			t.Errorf("Offset(%+v) = %d, want %d", tt.page, got, tt.want)
		}
	}
}
