package identity

import (
	"bytes"
	"crypto/ed25519"
	"os"
	"path/filepath"
	"strings"
	"testing"

	crypto "github.com/libp2p/go-libp2p/core/crypto"
)

func testKey(t *testing.T) crypto.PrivKey {
	t.Helper()
	// RFC 8032 test 1 secret seed
	seed := []byte{
		0x9d, 0x61, 0xb1, 0x9d, 0xef, 0xfd, 0x5a, 0x60, 0xba, 0x84, 0x4a, 0xf4, 0x92, 0xec, 0x2c, 0xc4,
		0x44, 0x49, 0xc5, 0x69, 0x7b, 0x32, 0x69, 0x19, 0x70, 0x3b, 0xac, 0x03, 0x1c, 0xae, 0x7f, 0x60,
	}
	priv, err := crypto.UnmarshalEd25519PrivateKey(ed25519.NewKeyFromSeed(seed))
	if err != nil {
		t.Fatalf("UnmarshalEd25519PrivateKey: %v", err)
	}
	return priv
}

func TestSeedIsRawPublicKey(t *testing.T) {
	id, err := New(testKey(t), "alice")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := id.Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	want := []byte{
		0xd7, 0x5a, 0x98, 0x01, 0x82, 0xb1, 0x0a, 0xb7, 0xd5, 0x4b, 0xfe, 0xd3, 0xc9, 0x64, 0x07, 0x3a,
		0x0e, 0xe1, 0x72, 0xf3, 0xda, 0xa6, 0x23, 0x25, 0xaf, 0x02, 0x1a, 0x68, 0xf7, 0x07, 0x51, 0x1a,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Seed() = %x, want %x", got, want)
	}
}

func TestDisplayName(t *testing.T) {
	id, err := New(testKey(t), "alice")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	name := id.DisplayName()
	if !strings.HasPrefix(name, "alice@") {
		t.Errorf("DisplayName() = %q, want alice@ prefix", name)
	}
	if id.Username() != "alice" {
		t.Errorf("Username() = %q, want alice", id.Username())
	}
	if !id.PeerID().MatchesPrivateKey(testKey(t)) {
		t.Error("PeerID does not match private key")
	}
}

func TestLoadOrCreate_CreatesThenLoads(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	first, err := LoadOrCreate(dir, "bob")
	if err != nil {
		t.Fatalf("LoadOrCreate (create): %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, identityFile))
	if err != nil {
		t.Fatalf("identity file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("identity file mode = %o, want 600", perm)
	}

	second, err := LoadOrCreate(dir, "someone-else")
	if err != nil {
		t.Fatalf("LoadOrCreate (load): %v", err)
	}
	if first.PeerID() != second.PeerID() {
		t.Errorf("PeerID changed across loads: %s != %s", first.PeerID(), second.PeerID())
	}
	if second.Username() != "bob" {
		t.Errorf("Username = %q, want stored name bob", second.Username())
	}

	s1, _ := first.Seed()
	s2, _ := second.Seed()
	if !bytes.Equal(s1, s2) {
		t.Error("Seed changed across loads")
	}
}

func TestLoadOrCreate_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, identityFile), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreate(dir, "x"); err == nil {
		t.Error("LoadOrCreate should fail on a corrupt identity file")
	}
}

func TestLoadOrCreate_StatErrorIsReturned(t *testing.T) {
	// a regular file where the data directory should be
	notDir := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(notDir, []byte("keep"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadOrCreate(notDir, "x")
	if err == nil {
		t.Fatal("LoadOrCreate should fail when the identity path cannot be stat'ed")
	}
	if !strings.Contains(err.Error(), "failed to stat") {
		t.Errorf("error = %v, want the stat failure", err)
	}
	if data, _ := os.ReadFile(notDir); string(data) != "keep" {
		t.Errorf("file contents changed to %q", data)
	}
}
