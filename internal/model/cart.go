package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// keyDelimiter joins product id and size in the session wire format.
// An absent size is an empty trailing segment ("5:").
const keyDelimiter = ":"

// ItemKey identifies one cart line: a product in a specific size.
type ItemKey struct {
	ProductID uint
	Size      string
}

func (k ItemKey) Encode() string {
	return strconv.FormatUint(uint64(k.ProductID), 10) + keyDelimiter + k.Size
}

func ParseItemKey(s string) (ItemKey, error) {
	idPart, size, found := strings.Cut(s, keyDelimiter)
	if !found {
		return ItemKey{}, fmt.Errorf("cart key %q: missing delimiter", s)
	}
	id, err := strconv.ParseUint(idPart, 10, 32)
	if err != nil {
		return ItemKey{}, fmt.Errorf("cart key %q: bad product id: %w", s, err)
	}
	return ItemKey{ProductID: uint(id), Size: size}, nil
}

// Cart maps item keys to positive quantities.
type Cart map[ItemKey]int

// MarshalJSON writes the session wire format: {"<productID>:<size>": qty}.
func (c Cart) MarshalJSON() ([]byte, error) {
	flat := make(map[string]int, len(c))
	for k, qty := range c {
		flat[k.Encode()] = qty
	}
	return json.Marshal(flat)
}

// UnmarshalJSON drops entries whose key does not parse, mirroring how
// the cart view skips malformed session entries.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var flat map[string]int
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	out := make(Cart, len(flat))
	for raw, qty := range flat {
		key, err := ParseItemKey(raw)
		if err != nil {
			continue
		}
		out[key] = qty
	}
	*c = out
	return nil
}
