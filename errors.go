package squishyid

import "errors"

// Key validation errors returned by New. Match with errors.Is;
// ErrKeyNotUnique is wrapped with the offending rune and its index.
var (
	ErrKeyTooShort  = errors.New("squishyid: key must contain at least 2 characters")
	ErrKeyNotUnique = errors.New("squishyid: key must contain unique characters")
)

// Decode errors. Match with errors.Is; ErrUnknownCharacter is wrapped with
// the offending rune and its index.
var (
	ErrEmptyInput       = errors.New("squishyid: encoded value must contain at least 1 character")
	ErrUnknownCharacter = errors.New("squishyid: encoded value contains character not present in key")
	ErrOverflow         = errors.New("squishyid: encoded value too big to decode")
)
