package identity

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	crypto "github.com/libp2p/go-libp2p/core/crypto"
)

const identityFile = "identity.json"

type diskIdentity struct {
	PrivKey  []byte `json:"priv_key"`
	Username string `json:"username"`
}

// LoadOrCreate reads dir/identity.json, generating an Ed25519 identity
// the first time. A stored username wins over the one passed in.
func LoadOrCreate(dir, username string) (*Identity, error) {
	filePath := filepath.Join(dir, identityFile)
	_, err := os.Stat(filePath)
	switch {
	case err == nil:
		return loadFromDisk(filePath)
	case errors.Is(err, fs.ErrNotExist):
		return createNew(filePath, username)
	default:
		return nil, fmt.Errorf("failed to stat %s: %w", filePath, err)
	}
}

func loadFromDisk(path string) (*Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d diskIdentity
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	priv, err := crypto.UnmarshalPrivateKey(d.PrivKey)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal key in %s: %w", path, err)
	}
	log.Debugf("loaded identity from %s", path)
	return New(priv, d.Username)
}

func createNew(path, username string) (*Identity, error) {
	priv, _, err := crypto.GenerateEd25519Key(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	id, err := New(priv, username)
	if err != nil {
		return nil, err
	}
	serialized, err := crypto.MarshalPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key: %w", err)
	}
	data, err := json.Marshal(diskIdentity{
		PrivKey:  serialized,
		Username: username,
	})
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write identity: %w", err)
	}
	log.Infof("created identity %s in %s", id.DisplayName(), path)
	return id, nil
}
