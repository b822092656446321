package bundle

import "strings"

const vlqChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// writeVLQ encodes v as a base64 VLQ: the sign moves to the lowest bit,
// then 5-bit groups are emitted low to high with bit 5 as continuation
func writeVLQ(b *strings.Builder, v int) {
	u := uint32(v) << 1
	if v < 0 {
		u = uint32(-v)<<1 | 1
	}

	for {
		digit := u & 0x1f
		u >>= 5
		if u > 0 {
			digit |= 0x20
		}
		b.WriteByte(vlqChars[digit])
		if u == 0 {
			break
		}
	}
}

// encodeVLQ returns the encoding of a single value
func encodeVLQ(v int) string {
	var b strings.Builder
	writeVLQ(&b, v)
	return b.String()
}
