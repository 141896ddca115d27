package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"out of stock wins over amend", fmt.Errorf("%w: %w", ErrAmend, ErrOutOfStock), "requested quantity out of stock"},
		{"removal wraps not found", fmt.Errorf("%w: %w", ErrRemoval, ErrNotFound), "failed to remove product"},
		{"amend", fmt.Errorf("%w: %w", ErrAmend, ErrNotFound), "failed to change product amount"},
		{"add", fmt.Errorf("%w: %w", ErrAdd, ErrNotFound), "failed to add product"},
		{"bare not found", ErrNotFound, "product not found"},
		{"unknown", errors.New("boom"), "unexpected error, please try again"},
	}
	for _, tc := range cases {
		if got := Message(tc.err); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestCartFindAndClone(t *testing.T) {
	c := Cart{{ID: 1, Amount: 1}, {ID: 2, Amount: 3}}
	if idx := c.Find(2); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := c.Find(9); idx != -1 {
		t.Fatalf("expected -1 for missing id, got %d", idx)
	}
	cp := c.Clone()
	cp[0].Amount = 7
	if c[0].Amount != 1 {
		t.Fatalf("clone shares storage with original")
	}
}
