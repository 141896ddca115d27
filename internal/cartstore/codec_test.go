package cartstore

import (
	"testing"

	"rocketshoes-cart/internal/domain"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cart := domain.Cart{
		{ID: 2, Title: "b", Price: 139.9, Image: "https://img/2.jpg", Amount: 4},
		{ID: 1, Title: "a", Price: 10, Image: "https://img/1.jpg", Amount: 1},
	}
	blob, err := Encode(cart)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertSameCart(t, cart, got)
}

func TestEncodeUsesPlainNumbers(t *testing.T) {
	blob, err := Encode(domain.Cart{{ID: 1, Title: "a", Price: 10.5, Image: "i", Amount: 2}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `[{"id":1,"title":"a","price":10.5,"image":"i","amount":2}]`
	if string(blob) != want {
		t.Fatalf("expected %s, got %s", want, blob)
	}
}

func TestEncodeNilCart(t *testing.T) {
	blob, err := Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(blob) != "[]" {
		t.Fatalf("expected empty array, got %s", blob)
	}
}

func TestDecodeRejectsBrokenInvariants(t *testing.T) {
	for name, blob := range map[string]string{
		"not json":     `{`,
		"zero amount":  `[{"id":1,"amount":0}]`,
		"duplicate id": `[{"id":1,"amount":1},{"id":1,"amount":2}]`,
	} {
		if _, err := Decode([]byte(blob)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDecodeNull(t *testing.T) {
	got, err := Decode([]byte("null"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil cart, got %#v", got)
	}
}
