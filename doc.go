// Package squishyid shortens and obfuscates uint64 identifiers by encoding
// them in positional notation over a caller-supplied alphabet ("key").
// Typical uses: hiding real database IDs in URLs or REST APIs, and saving
// space where it is limited, like SMS or push messages.
//
// Components:
//   - Codec: immutable lookup tables built once from a key; Encode/Decode
//     are pure functions of those tables.
//   - ID: uint64 whose external representations (String, text, JSON,
//     msgpack, CBOR) are squished through the package default codec while
//     internal values stay raw.
//   - Obfuscator: optional XOR mask applied to ID representations only.
//
// The longer the key, the shorter the encoded ID, and the result is made
// exclusively of characters from the key:
//
//	s, err := squishyid.New("2BjLhRduC6Tb8Q5cEk9oxnFaWUDpOlGAgwYzNre7tI4yqPvXm0KSV1fJs3ZiHM")
//	s.Encode(48888851145) // "1FN7Ab"
//	s.Decode("1FN7Ab")    // 48888851145
//
// This is not encryption. There are no consistency checks and the key is
// easy to reverse engineer from a small number of encoded/decoded samples.
// Treat it as really, really fast obfuscation only.
//
// A "character" is a single Unicode scalar (rune). Keys are not normalized;
// each scalar of a combining sequence is an independent digit, which keeps
// every symbol O(1) to look up.
package squishyid
