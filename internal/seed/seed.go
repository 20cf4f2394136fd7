// Package seed turns user input into the bytes an identicon is derived from.
package seed

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/tv42/zbase32"
)

var (
	ErrUnknownFormat = errors.New("unknown seed format")
	ErrBadChecksum   = errors.New("bad checksum")
	ErrBadLength     = errors.New("bad length")
	ErrBadPrefix     = errors.New("bad address prefix")
	ErrInvalidKey    = errors.New("invalid public key")
)

// Format says how an input string encodes the seed.
type Format int

const (
	Text Format = iota // UTF-8 bytes of the input as-is
	Hex
	SS58
	ZBase32
	Peer
	Ed25519
)

var formatNames = [...]string{
	Text:    "text",
	Hex:     "hex",
	SS58:    "ss58",
	ZBase32: "zbase32",
	Peer:    "peer",
	Ed25519: "ed25519",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat accepts the names printed by Format.String.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Parse decodes input according to f.
func Parse(input string, f Format) ([]byte, error) {
	switch f {
	case Text:
		return []byte(input), nil
	case Hex:
		return unhex(input)
	case SS58:
		_, account, err := DecodeSS58(input)
		return account, err
	case ZBase32:
		b, err := zbase32.DecodeString(input)
		if err != nil {
			return nil, fmt.Errorf("zbase32: %w", err)
		}
		return b, nil
	case Peer:
		return peerKey(input)
	case Ed25519:
		return ed25519Key(input)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// unhex decodes hex with an optional 0x prefix.
func unhex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hex: %w", err)
	}
	return b, nil
}
