// Package cryptox holds the key derivation and authenticated-encryption
// helpers used to protect job records at rest.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// KeyLength is the size in bytes of every key produced by this package (AES-256).
const KeyLength = 32

var (
	ErrKeyDerivation      = errors.New("key derivation failed")
	ErrTamperOrCorruption = errors.New("sealed token is tampered or corrupted")
)

// tokenEncoding rejects non-zero padding bits so that every change to a token's
// text is visible to Open.
var tokenEncoding = base64.StdEncoding.Strict()

// DeriveKey turns a passphrase into a 32-byte AES key.
//
// The SHA-256 digest of the passphrase is rendered as lowercase hex and the
// first 32 characters of that string are used verbatim as key bytes. There is
// no salt and no work factor, so the key carries at most 128 bits of entropy
// and is cheap to brute force. It is kept for compatibility with stores
// written by earlier releases; new deployments should prefer Argon2KeySource.
func DeriveKey(passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("%w: empty passphrase", ErrKeyDerivation)
	}

	sum := sha256.Sum256(passphrase)
	hexed := hex.EncodeToString(sum[:])

	return []byte(hexed[:KeyLength]), nil
}

// DeriveMasterKey derives a key from password and salt with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeyLength)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrKeyDerivation, KeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with AES-256-GCM and returns a base64 token.
//
// A new random 12-byte nonce is drawn for every call. The token layout is
//
//	base64( nonce[12] || ciphertext || tag[16] )
//
// which is the same "combined" layout other AES-GCM implementations use, so
// tokens can be opened outside of this package if needed.
func Seal(plaintext, key []byte) (string, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// ciphertext and tag are appended after the nonce
	blob := aesgcm.Seal(nonce, nonce, plaintext, nil)

	return tokenEncoding.EncodeToString(blob), nil
}

// Open reverses Seal. Any malformed, truncated or modified token, as well as a
// token sealed under another key, yields ErrTamperOrCorruption.
func Open(token string, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	blob, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTamperOrCorruption, err)
	}

	ns := aesgcm.NonceSize()
	if len(blob) < ns+aesgcm.Overhead() {
		return nil, fmt.Errorf("%w: token too short (%d bytes)", ErrTamperOrCorruption, len(blob))
	}

	plaintext, err := aesgcm.Open(nil, blob[:ns], blob[ns:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTamperOrCorruption, err)
	}

	return plaintext, nil
}

// Wipe overwrites b with zeros. It is safe to call with a nil slice.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
