package squishyid

import (
	"fmt"
	"math/bits"
)

// Codec converts uint64 values to short strings and back using a custom
// alphabet. Immutable after New; safe for concurrent use.
type Codec struct {
	base    uint64
	symbols []rune          // digit value -> rune, in key order
	indexes map[rune]uint64 // rune -> digit value
}

// New builds a Codec from key. The key must contain at least two runes,
// each at most once. Rune order defines digit values: the i-th rune of the
// key encodes digit i, and the rune count is the radix.
func New(key string) (*Codec, error) {
	symbols := []rune(key)
	if len(symbols) < 2 {
		return nil, ErrKeyTooShort
	}

	indexes := make(map[rune]uint64, len(symbols))
	for i, r := range symbols {
		if _, dup := indexes[r]; dup {
			return nil, fmt.Errorf("%w: %q at index %d", ErrKeyNotUnique, r, i)
		}
		indexes[r] = uint64(i)
	}

	return &Codec{
		base:    uint64(len(symbols)),
		symbols: symbols,
		indexes: indexes,
	}, nil
}

// MustNew is New that panics on an invalid key. For package-level codecs
// built from known-good alphabets.
func MustNew(key string) *Codec {
	c, err := New(key)
	if err != nil {
		panic(err)
	}
	return c
}

// Base returns the radix, i.e. the number of runes in the key.
func (c *Codec) Base() int { return len(c.symbols) }

// Key returns the key the codec was built from.
func (c *Codec) Key() string { return string(c.symbols) }

// Encode returns the positional-notation representation of value in the
// codec's alphabet. The result is never empty, is made only of key runes,
// and carries no leading zero digit; zero encodes as the key's first rune.
// Distinct values always produce distinct strings.
func (c *Codec) Encode(value uint64) string {
	// at most 64 digits for uint64 (base 2)
	buf := make([]rune, 0, 64)
	for {
		buf = append(buf, c.symbols[value%c.base])
		value /= c.base
		if value == 0 {
			break
		}
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Decode interprets text as a positional-notation number in the codec's
// alphabet, most significant digit first. Leading zero digits are accepted,
// so Decode(Encode(v)) == v for every v, while Encode(Decode(s)) yields the
// canonical form of s. Every arithmetic step is overflow-checked: the
// positional weight, the digit multiply and the accumulating add each fail
// with ErrOverflow the moment the value leaves the uint64 range.
func (c *Codec) Decode(text string) (uint64, error) {
	if text == "" {
		return 0, ErrEmptyInput
	}

	runes := []rune(text)

	var decoded uint64
	weight := uint64(1) // base^position, position counted from the right
	for pos := 0; pos < len(runes); pos++ {
		i := len(runes) - 1 - pos
		digit, ok := c.indexes[runes[i]]
		if !ok {
			return 0, fmt.Errorf("%w: %q at index %d", ErrUnknownCharacter, runes[i], i)
		}

		if pos > 0 {
			hi, w := bits.Mul64(weight, c.base)
			if hi != 0 {
				return 0, ErrOverflow
			}
			weight = w
		}

		hi, term := bits.Mul64(digit, weight)
		sum, carry := bits.Add64(decoded, term, 0)
		if hi != 0 || carry != 0 {
			return 0, ErrOverflow
		}
		decoded = sum
	}

	return decoded, nil
}
