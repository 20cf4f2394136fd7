// hash.go
package dot

import "golang.org/x/crypto/blake2b"

// Digest is a BLAKE2b-512 hash.
type Digest [blake2b.Size]byte

// ID is the id vector every other derivation step reads from.
// Byte 28 drives rotation, 29 saturation, 30..31 scheme selection.
type ID [blake2b.Size]byte

const zeroSeedLen = 32

// zeroDigest never changes, so it is computed once.
var zeroDigest = Hash(make([]byte, zeroSeedLen))

// Hash returns the unkeyed BLAKE2b-512 digest of b.
func Hash(b []byte) Digest {
	return blake2b.Sum512(b)
}

// NewID hashes seed and subtracts the digest of 32 zero bytes from it.
func NewID(seed []byte) ID {
	return subtract(Hash(seed), zeroDigest)
}

// subtract is byte-wise subtraction mod 256.
func subtract(a, b Digest) ID {
	var id ID
	for i := range id {
		id[i] = a[i] - b[i]
	}
	return id
}

// Saturation returns the HSL saturation shared by every palette color.
// It is not clamped and can reach 1.09.
func (id ID) Saturation() float64 {
	sat := (uint16(id[29])*70/256+26)%80 + 30
	return float64(sat) / 100
}

// Rotation returns the offset applied to the 18 outer scheme positions.
func (id ID) Rotation() int {
	return int(id[28]%6) * 3
}

// Selector returns the value scheme selection is reduced from.
func (id ID) Selector() uint32 {
	return uint32(id[30]) + uint32(id[31])*256
}
