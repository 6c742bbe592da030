package postgresdb

import (
	"bytes"
	"testing"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "title", `"title"`, false},
		{"underscore", "created_at", `"created_at"`, false},
		{"schema qualified", "public.tasks", `"public"."tasks"`, false},
		{"injection semicolon", "title; DROP TABLE tasks", "", true},
		{"injection quote", `title"`, "", true},
		{"leading digit", "1title", "", true},
		{"too many segments", "a.b.c", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QuoteIdentifier(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("QuoteIdentifier(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("QuoteIdentifier(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("QuoteIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddOrderByClause(t *testing.T) {
	var buf bytes.Buffer
	if err := AddOrderByClause(&buf, "created_at", "task_id", DESC); err != nil {
		t.Fatalf("add order by: %v", err)
	}
	want := ` ORDER BY "created_at" DESC, "task_id" DESC`
	if got := buf.String(); got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}
}

func TestAddOrderByClauseRejectsBadDirection(t *testing.T) {
	var buf bytes.Buffer
	if err := AddOrderByClause(&buf, "created_at", "task_id", "SIDEWAYS"); err == nil {
		t.Fatal("expected error for invalid direction")
	}
}
