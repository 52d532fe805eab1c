package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadOrCreateHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	log := zerolog.Nop()

	first, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not persisted: %v", err)
	}
	second, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("reloaded key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	signer, err := loadOrCreateHostKey(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("loadOrCreateHostKey: %v", err)
	}
	if signer.PublicKey().Type() != "ssh-ed25519" {
		t.Errorf("key type %q", signer.PublicKey().Type())
	}
}
