package hashid

import "testing"

func newTestCodec() *Codec {
	return New("test-secret-key", DefaultMinLength)
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec()

	ids := []int64{0, 1, 7, 42, 999, 123456, 987654321, 9007199254740991}
	for _, id := range ids {
		encoded, err := c.Encode(KindUser, id)
		if err != nil {
			t.Fatalf("Encode(%d): %v", id, err)
		}
		decoded, ok := c.Decode(KindUser, encoded)
		if !ok {
			t.Fatalf("Decode(%q) should succeed", encoded)
		}
		if decoded != id {
			t.Errorf("round trip of %d yielded %d", id, decoded)
		}
	}
}

func TestCodec_Deterministic(t *testing.T) {
	c := newTestCodec()

	a, err := c.Encode(KindProject, 42)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := c.Encode(KindProject, 42)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if a != b {
		t.Errorf("encoding is not deterministic: %q vs %q", a, b)
	}
}

func TestCodec_MinLength(t *testing.T) {
	c := newTestCodec()

	encoded, err := c.Encode(KindUser, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(encoded) < DefaultMinLength {
		t.Errorf("expected at least %d characters, got %d (%q)", DefaultMinLength, len(encoded), encoded)
	}
}

func TestCodec_DecodeGarbage(t *testing.T) {
	c := newTestCodec()

	for _, garbage := range []string{"", "!!!", "not-a-hash", "abc def", "ZZZZZZZZZZZZZZZZ"} {
		if id, ok := c.Decode(KindUser, garbage); ok {
			t.Errorf("Decode(%q) should fail, got %d", garbage, id)
		}
	}
}

func TestCodec_KeyspaceIsolation(t *testing.T) {
	c := newTestCodec()

	encoded, err := c.Encode(KindUser, 42)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if id, ok := c.Decode(KindProject, encoded); ok {
		t.Errorf("user hash decoded as project id %d; keyspaces must be disjoint", id)
	}
}

func TestCodec_DistinctSecretsDisagree(t *testing.T) {
	a := New("secret-one", DefaultMinLength)
	b := New("secret-two", DefaultMinLength)

	ea, err := a.Encode(KindUser, 42)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if id, ok := b.Decode(KindUser, ea); ok && id == 42 {
		t.Error("codec with a different secret decoded a foreign hash")
	}
}
