package hashid

import (
	"sync"

	hashids "github.com/speps/go-hashids/v2"
)

// Entity kinds with their own keyspace. Encoding an ID under one kind
// never decodes under another: each kind derives its own salt.
const (
	KindUser    = "user"
	KindProject = "project"
)

// DefaultMinLength pads every public ID to at least this many characters,
// independent of the magnitude of the underlying integer.
const DefaultMinLength = 12

// Codec converts internal sequential integer IDs to short opaque public
// strings and back. This is obfuscation, not access control: callers must
// still check ownership and permissions server-side.
type Codec struct {
	secret    string
	minLength int

	mu     sync.Mutex
	byKind map[string]*hashids.HashID
}

// New creates a Codec keyed with the given secret.
// minLength <= 0 falls back to DefaultMinLength.
func New(secret string, minLength int) *Codec {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &Codec{
		secret:    secret,
		minLength: minLength,
		byKind:    make(map[string]*hashids.HashID),
	}
}

func (c *Codec) forKind(kind string) (*hashids.HashID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.byKind[kind]; ok {
		return h, nil
	}

	data := hashids.NewData()
	data.Salt = c.secret + "_" + kind
	data.MinLength = c.minLength
	data.Alphabet = hashids.DefaultAlphabet // alphanumeric, URL-safe

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, err
	}
	c.byKind[kind] = h
	return h, nil
}

// Encode maps a non-negative ID to its public string form for the given
// kind. Deterministic: the same (kind, id) always yields the same string.
func (c *Codec) Encode(kind string, id int64) (string, error) {
	h, err := c.forKind(kind)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{id})
}

// Decode maps a public string back to the internal ID. The second return
// value is false when the input is malformed or was not produced by this
// kind's keyspace. Decode is total: it never panics.
func (c *Codec) Decode(kind, hash string) (int64, bool) {
	if hash == "" {
		return 0, false
	}
	h, err := c.forKind(kind)
	if err != nil {
		return 0, false
	}
	ids, err := h.DecodeInt64WithError(hash)
	if err != nil || len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
