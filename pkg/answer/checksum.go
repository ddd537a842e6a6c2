package answer

import (
	"crypto/md5"
	"math/big"
)

// checksum hashes data with MD5 and renders the digest as a signed,
// big-endian big integer in lowercase base-36. This exact encoding is
// load-bearing: it becomes part of a provisioned DNS name, and must
// match byte-for-byte across reimplementations (it mirrors Java's
// two's-complement BigInteger(byte[]) constructor).
func checksum(data []byte) string {
	digest := md5.Sum(data)
	return encodeSignedBase36(digest[:])
}

// encodeSignedBase36 interprets b as a signed, big-endian two's
// complement integer and renders it in lowercase base-36. big.Int has
// no constructor for signed big-endian bytes, so a negative value is
// recovered by computing its magnitude (two's-complement negation of
// b) and negating the resulting positive value.
func encodeSignedBase36(b []byte) string {
	n := new(big.Int)
	if len(b) > 0 && b[0]&0x80 != 0 {
		magnitude := make([]byte, len(b))
		carry := byte(1)
		for i := len(b) - 1; i >= 0; i-- {
			inverted := ^b[i]
			sum := uint16(inverted) + uint16(carry)
			magnitude[i] = byte(sum)
			carry = byte(sum >> 8)
		}
		n.SetBytes(magnitude)
		n.Neg(n)
	} else {
		n.SetBytes(b)
	}
	return n.Text(36)
}
