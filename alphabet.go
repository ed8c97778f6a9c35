package squishyid

// Predefined keys for New. Each is duplicate-free and ASCII; pick one by
// the character set the encoded IDs must survive in, not by length alone.
const (
	// Base16 is lowercase hexadecimal.
	Base16 = "0123456789abcdef"

	// Base32 is the Crockford set: no I, L, O or U, for human transcription.
	Base32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// Base36 survives case-insensitive contexts such as NTFS file names.
	Base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

	// Base58 is the Bitcoin set: no 0, O, I or l.
	Base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// Base62 is the full alphanumeric set and the package default.
	Base62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base64URL matches the character set of RFC 4648 URL-safe base64.
	// The encoding itself is positional, not bit-group base64.
	Base64URL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)
