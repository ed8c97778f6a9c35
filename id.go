package squishyid

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultCodec renders ID values. It starts as a Base62 codec; replace it
// once at startup via SetDefault before any ID is formatted or parsed.
var DefaultCodec = MustNew(Base62)

// SetDefault replaces the codec used by ID representations.
func SetDefault(c *Codec) { DefaultCodec = c }

// ID is a uint64 identifier whose external representations are squished
// through DefaultCodec, with DefaultObfuscator applied when set. The
// numeric value itself stays raw, so arithmetic and storage keep working.
type ID uint64

var (
	_ msgpack.CustomEncoder = ID(0)
	_ msgpack.CustomDecoder = (*ID)(nil)
	_ cbor.Marshaler        = ID(0)
	_ cbor.Unmarshaler      = (*ID)(nil)
)

// ParseID decodes s with DefaultCodec and reverses obfuscation.
func ParseID(s string) (ID, error) {
	v, err := DefaultCodec.Decode(s)
	if err != nil {
		return 0, err
	}
	return ID(deobfuscate(v)), nil
}

// String returns the squished representation.
func (id ID) String() string {
	return DefaultCodec.Encode(obfuscate(uint64(id)))
}

// MarshalText implements encoding.TextMarshaler. encoding/json picks this
// up, so JSON values and object keys render as squished strings too.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	v, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (id ID) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(id.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (id *ID) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (id ID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (id *ID) UnmarshalCBOR(b []byte) error {
	var s string
	if err := cbor.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = v
	return nil
}
