package common

import "encoding/binary"

func AppendBinary(b []byte) []byte {
	var t []byte

	l := make([]byte, 4)
	binary.LittleEndian.PutUint32(l, uint32(len(b)))
	t = append(t, l...)
	t = append(t, b...)

	return t
}

func ExtractBinary(b []byte) ([]byte, int) {
	if len(b) < 4 {
		return nil, -1
	}

	l := int(binary.LittleEndian.Uint32(b[:4]))
	if len(b) < 4+l {
		return nil, -1
	}

	return b[4 : 4+l], 4 + l
}

// ExtractBinaries reads consecutive length-prefixed chunks until b is
// consumed.
func ExtractBinaries(b []byte) ([][]byte, int) {
	var l [][]byte

	var offset int
	for offset < len(b) {
		e, o := ExtractBinary(b[offset:])
		if o < 0 {
			return nil, -1
		}

		l = append(l, e)
		offset += o
	}

	return l, offset
}
