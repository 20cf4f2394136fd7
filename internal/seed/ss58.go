// ss58.go
package seed

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const checksumLen = 2

var ss58Context = []byte("SS58PRE")

// DecodeSS58 returns the network prefix and account bytes of a Substrate
// address. Only 32-byte account ids and 33-byte compressed keys are
// accepted, both with a two byte checksum.
func DecodeSS58(addr string) (uint16, []byte, error) {
	data, err := base58.Decode(addr)
	if err != nil {
		return 0, nil, fmt.Errorf("ss58: %w", err)
	}
	if len(data) < 2 {
		return 0, nil, fmt.Errorf("ss58: %w: %d bytes", ErrBadLength, len(data))
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case data[0] < 64:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128:
		lower := data[0]<<2 | data[1]>>6
		upper := data[1] & 0x3f
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return 0, nil, fmt.Errorf("ss58: %w: first byte %d", ErrBadPrefix, data[0])
	}

	body := len(data) - prefixLen - checksumLen
	if body != 32 && body != 33 {
		return 0, nil, fmt.Errorf("ss58: %w: %d byte payload", ErrBadLength, body)
	}

	split := len(data) - checksumLen
	sum := ss58Checksum(data[:split])
	if !bytes.Equal(sum, data[split:]) {
		return 0, nil, fmt.Errorf("ss58: %w", ErrBadChecksum)
	}
	return prefix, data[prefixLen:split], nil
}

// EncodeSS58 is the inverse of DecodeSS58.
func EncodeSS58(prefix uint16, account []byte) (string, error) {
	if len(account) != 32 && len(account) != 33 {
		return "", fmt.Errorf("ss58: %w: %d byte payload", ErrBadLength, len(account))
	}
	if prefix >= 1<<14 {
		return "", fmt.Errorf("ss58: %w: %d", ErrBadPrefix, prefix)
	}

	var data []byte
	if prefix < 64 {
		data = append(data, byte(prefix))
	} else {
		data = append(data,
			byte((prefix&0xfc)>>2)|0x40,
			byte(prefix>>8)|byte(prefix&0x03)<<6,
		)
	}
	data = append(data, account...)
	data = append(data, ss58Checksum(data)...)
	return base58.Encode(data), nil
}

func ss58Checksum(b []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(ss58Context)
	h.Write(b)
	return h.Sum(nil)[:checksumLen]
}
