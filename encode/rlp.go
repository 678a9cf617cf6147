package encode

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/spikeekips/pyo/common"
)

var (
	RLPEncoderType EncoderType = NewEncoderType(1, "rlp")

	defaultEncoder RLP
)

// Encode serializes with the default rlp encoder.
func Encode(version common.Version, i interface{}) ([]byte, error) {
	return defaultEncoder.Encode(version, i)
}

// Decode deserializes with the default rlp encoder, returning the format
// version the data was written with.
func Decode(b []byte, i interface{}) (common.Version, error) {
	return defaultEncoder.Decode(b, i)
}

// RLP encodes a value into a self-describing envelope:
// [encoder type][format version][rlp payload].
type RLP struct {
}

func (r RLP) Type() EncoderType {
	return RLPEncoderType
}

func (r RLP) Encode(version common.Version, i interface{}) ([]byte, error) {
	t, err := RLPEncoderType.MarshalBinary()
	if err != nil {
		return nil, err
	}

	v, err := version.MarshalBinary()
	if err != nil {
		return nil, err
	}

	encoded, err := rlp.EncodeToBytes(i)
	if err != nil {
		return nil, err
	}

	b := common.AppendBinary(t)
	b = append(b, common.AppendBinary(v)...)
	b = append(b, common.AppendBinary(encoded)...)

	return b, nil
}

func (r RLP) Decode(b []byte, i interface{}) (common.Version, error) {
	chunks, o := common.ExtractBinaries(b)
	if o < 0 || len(chunks) != 3 {
		return common.ZeroVersion, DecodeFailedError.Newf(
			"malformed envelope; length=%d chunks=%d", len(b), len(chunks),
		)
	}

	var t EncoderType
	if err := t.UnmarshalBinary(chunks[0]); err != nil {
		return common.ZeroVersion, DecodeFailedError.New(err)
	} else if !t.Equal(RLPEncoderType) {
		return common.ZeroVersion, DecodeFailedError.Newf("not rlp encoded; type=%q", t.String())
	}

	var version common.Version
	if err := version.UnmarshalBinary(chunks[1]); err != nil {
		return common.ZeroVersion, DecodeFailedError.New(err)
	}

	if err := rlp.DecodeBytes(chunks[2], i); err != nil {
		return common.ZeroVersion, DecodeFailedError.New(err)
	}

	return version, nil
}
