package common

import (
	"crypto/sha256"
	"encoding"
	"encoding/json"

	"github.com/btcsuite/btcutil/base58"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	emptyRawHash = [32]byte{}
)

type Hasher interface {
	encoding.BinaryMarshaler
	Hash() Hash
}

func Encode(i interface{}) ([]byte, error) {
	return rlp.EncodeToBytes(i)
}

func Decode(b []byte, i interface{}) error {
	return rlp.DecodeBytes(b, i)
}

func RawHash(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// Hash is a hinted double-sha256 content hash; ballots and profiles are
// fingerprinted with it.
type Hash struct {
	h string
	b [32]byte
}

func NewHash(hint string, b []byte) (Hash, error) {
	if len([]byte(hint)) != 2 {
		return Hash{}, InvalidHashHintError.Newf("hint=%q", hint)
	}

	return Hash{h: hint, b: RawHash(b)}, nil
}

func NewHashFromObject(hint string, i interface{}) (Hash, error) {
	r, err := Encode(i)
	if err != nil {
		return Hash{}, err
	}

	return NewHash(hint, r)
}

func (h Hash) Hint() string {
	return h.h
}

func (h Hash) Body() [32]byte {
	return h.b
}

func (h Hash) Empty() bool {
	return h.b == emptyRawHash
}

func (h Hash) IsValid() bool {
	if h.Empty() {
		return false
	}
	if len(h.h) < 1 {
		return false
	}

	return true
}

func (h Hash) Equal(n Hash) bool {
	return h.h == n.h && h.b == n.b
}

func (h Hash) Bytes() []byte {
	return []byte(h.String())
}

func (h Hash) String() string {
	if h.Empty() {
		return ""
	}

	return h.h + "-" + base58.Encode(h.b[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h Hash) MarshalBinary() ([]byte, error) {
	b := AppendBinary([]byte(h.h))
	b = append(b, AppendBinary(h.b[:])...)

	return b, nil
}

func (h *Hash) UnmarshalBinary(b []byte) error {
	e, o := ExtractBinary(b)
	if o < 0 {
		return EmptyHashError.Newf("not enough to read hint; length=%d", len(b))
	}
	hint := string(e)

	e, o = ExtractBinary(b[o:])
	if o < 0 || len(e) != 32 {
		return EmptyHashError.Newf("invalid hash body; length=%d", len(e))
	}

	var body [32]byte
	copy(body[:], e)

	h.h = hint
	h.b = body

	return nil
}
