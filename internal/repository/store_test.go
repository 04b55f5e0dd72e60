package repository

import (
	"errors"
	"testing"
)

func TestObjectIDMalformed(t *testing.T) {
	cases := []string{"", "not-hex", "652d1c", "zzzzzzzzzzzzzzzzzzzzzzzz"}
	for _, id := range cases {
		if _, err := objectID(id); !errors.Is(err, ErrNotFound) {
			t.Fatalf("objectID(%q): expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestObjectIDValid(t *testing.T) {
	oid, err := objectID("652d1c0000000000000000aa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if oid.Hex() != "652d1c0000000000000000aa" {
		t.Fatalf("round trip mismatch: %s", oid.Hex())
	}
}
