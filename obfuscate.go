package squishyid

// DefaultObfuscator, when set, obfuscates all external ID representations
// (String, text, JSON, msgpack, CBOR) while keeping internal values raw.
// Set it once at startup, before any ID is formatted or parsed.
var DefaultObfuscator *Obfuscator

// Obfuscator XORs values with a key to hide sequential database IDs in
// external representations.
type Obfuscator struct {
	key uint64
}

// NewObfuscator creates an obfuscator with the given key.
// Use a random uint64 and keep it secret.
func NewObfuscator(key uint64) *Obfuscator {
	return &Obfuscator{key: key}
}

// SetObfuscator sets the DefaultObfuscator with the given key.
func SetObfuscator(key uint64) {
	DefaultObfuscator = NewObfuscator(key)
}

// Obfuscate XORs the value with the key.
func (o *Obfuscator) Obfuscate(v uint64) uint64 {
	return v ^ o.key
}

// Deobfuscate reverses obfuscation (XOR is its own inverse).
func (o *Obfuscator) Deobfuscate(v uint64) uint64 {
	return v ^ o.key
}

// obfuscate applies DefaultObfuscator if set.
func obfuscate(v uint64) uint64 {
	if DefaultObfuscator != nil {
		return DefaultObfuscator.Obfuscate(v)
	}
	return v
}

// deobfuscate reverses obfuscation if DefaultObfuscator is set.
func deobfuscate(v uint64) uint64 {
	if DefaultObfuscator != nil {
		return DefaultObfuscator.Deobfuscate(v)
	}
	return v
}
