// keys.go
package seed

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/libp2p/go-libp2p/core/peer"
)

// peerKey extracts the public key embedded in a libp2p peer ID. Only
// identity-hashed IDs (Ed25519 and other short keys) carry one.
func peerKey(s string) ([]byte, error) {
	id, err := peer.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("peer id: %w", err)
	}
	pub, err := id.ExtractPublicKey()
	if err != nil {
		return nil, fmt.Errorf("peer id %s: %w: %v", id, ErrInvalidKey, err)
	}
	raw, err := pub.Raw()
	if err != nil {
		return nil, fmt.Errorf("peer id %s: %w", id, err)
	}
	return raw, nil
}

// ed25519Key decodes a hex public key and checks it is a canonical
// encoding of a curve point.
func ed25519Key(s string) ([]byte, error) {
	b, err := unhex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("ed25519: %w: %d bytes", ErrBadLength, len(b))
	}
	var p edwards25519.Point
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("ed25519: %w: %v", ErrInvalidKey, err)
	}
	return b, nil
}
