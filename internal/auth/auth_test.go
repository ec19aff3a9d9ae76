package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	parsed, err := ParseArgon2idHash(hash)
	if err != nil {
		t.Fatalf("ParseArgon2idHash: %v", err)
	}
	if !parsed.Verify("secret") {
		t.Fatalf("expected password to verify")
	}
	if parsed.Verify("wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestParseArgon2idHashRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=3,p=1$c2FsdA$c3Vt",
		"$argon2id$v=18$m=65536,t=3,p=1$c2FsdA$c3Vt",
		"$argon2id$v=19$m=65536,t=3$c2FsdA$c3Vt",
		"$argon2id$v=19$m=65536,t=3,p=1$!!$c3Vt",
	}
	for _, phc := range tests {
		if _, err := ParseArgon2idHash(phc); err == nil {
			t.Fatalf("ParseArgon2idHash(%q): expected error", phc)
		}
	}
}

func TestLoadFile(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	path := filepath.Join(t.TempDir(), "auth.txt")
	content := "# comment\n\nalice:" + hash + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write auth file: %v", err)
	}

	users, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	entry, ok := users["alice"]
	if !ok {
		t.Fatalf("expected alice in auth file")
	}
	if !entry.Verify("pw") {
		t.Fatalf("expected alice's password to verify")
	}
}

func TestLoadFileRejectsDuplicateUser(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	path := filepath.Join(t.TempDir(), "auth.txt")
	content := "bob:" + hash + "\nbob:" + hash + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write auth file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected duplicate user error")
	}
}

func TestLoadFileRejectsPlainPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.txt")
	if err := os.WriteFile(path, []byte("carol:hunter2\n"), 0o600); err != nil {
		t.Fatalf("write auth file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for non-argon2id hash")
	}
}
