package validation_test

import (
	"testing"

	"github.com/taskward/taskward/sdk/validation"
)

func TestStringPtr(t *testing.T) {
	p := validation.StringPtr("pending")
	if p == nil || *p != "pending" {
		t.Errorf("StringPtr(%q) = %v", "pending", p)
	}
}

func TestStringPtrIfNotEmpty(t *testing.T) {
	if p := validation.StringPtrIfNotEmpty(""); p != nil {
		t.Errorf("empty string should yield nil, got %q", *p)
	}

	p := validation.StringPtrIfNotEmpty("done")
	if p == nil || *p != "done" {
		t.Errorf("StringPtrIfNotEmpty(%q) = %v", "done", p)
	}
}
