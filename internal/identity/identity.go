package identity

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	crypto "github.com/libp2p/go-libp2p/core/crypto"
	peer "github.com/libp2p/go-libp2p/core/peer"
	zbase32 "github.com/tv42/zbase32"
)

var log = logging.Logger("identity")

// Identity is a stored local key; its public half seeds the owner's icon
type Identity struct {
	pubKey   crypto.PubKey
	peerID   peer.ID
	username string
}

// New creates a new Identity from key and username
func New(priv crypto.PrivKey, username string) (*Identity, error) {
	peerID, err := peer.IDFromPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to derive peer id: %w", err)
	}
	log.Debugf("identity %s for %s", peerID, username)
	return &Identity{
		pubKey:   priv.GetPublic(),
		peerID:   peerID,
		username: username,
	}, nil
}

func (id *Identity) Username() string {
	return id.username
}

func (id *Identity) PeerID() peer.ID {
	return id.peerID
}

// Seed returns the raw public key bytes.
func (id *Identity) Seed() ([]byte, error) {
	raw, err := id.pubKey.Raw()
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}
	return raw, nil
}

func (id *Identity) DisplayName() string {
	return fmt.Sprintf("%s@%s", id.username, encodeID(id.peerID))
}

func encodeID(id peer.ID) string {
	encoded := make([]byte, zbase32.EncodedLen(len(id)))
	written := zbase32.Encode(encoded, []byte(id))
	return string(encoded[:written])
}
