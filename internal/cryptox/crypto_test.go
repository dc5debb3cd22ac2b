package cryptox

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := DeriveKey([]byte("Secret Password"))
	require.NoError(t, err)
	return key
}

func TestDeriveKey_Deterministic(t *testing.T) {
	key1, err := DeriveKey([]byte("Secret Password"))
	require.NoError(t, err)
	key2, err := DeriveKey([]byte("Secret Password"))
	require.NoError(t, err)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	// first 32 hex chars of sha256("Secret Password")
	assert.Equal(t, "e4e369fa2cde1b4977c98a1778af8a47", string(key1))
	assert.Len(t, key1, KeyLength)
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	key1, err := DeriveKey([]byte("Secret Password"))
	require.NoError(t, err)
	key2, err := DeriveKey([]byte("another"))
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)
	assert.Equal(t, "ae448ac86c4e8e4dec645729708ef418", string(key2))
}

func TestDeriveKey_EmptyPassphrase(t *testing.T) {
	_, err := DeriveKey(nil)
	require.ErrorIs(t, err, ErrKeyDerivation)
}

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "9290403300158e19f27e48e7087f7383b03065bf5b25ef23ebc40229616cd8b3"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveMasterKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveMasterKey(password, []byte("salt-1"))
	key2 := DeriveMasterKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := testKey(t)

	cases := [][]byte{
		[]byte(`{"id":1,"isOpen":true}`),
		[]byte("x"),
		{},
		bytes.Repeat([]byte{0xff}, 4096),
	}
	for _, plaintext := range cases {
		token, err := Seal(plaintext, key)
		require.NoError(t, err)

		got, err := Open(token, key)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(plaintext, got), "round trip mismatch for %d bytes", len(plaintext))
	}
}

func TestSeal_FreshNonceEveryCall(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("same input")

	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		token, err := Seal(plaintext, key)
		require.NoError(t, err)

		blob, err := tokenEncoding.DecodeString(token)
		require.NoError(t, err)
		nonce := string(blob[:12])

		_, dup := seen[nonce]
		require.False(t, dup, "nonce reused on call %d", i)
		seen[nonce] = struct{}{}
	}
}

func TestSeal_TokenLayout(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("hello")

	token, err := Seal(plaintext, key)
	require.NoError(t, err)

	blob, err := tokenEncoding.DecodeString(token)
	require.NoError(t, err)
	// nonce + ciphertext + tag
	assert.Len(t, blob, 12+len(plaintext)+16)
}

func TestOpen_DetectsEveryFlippedTextByte(t *testing.T) {
	key := testKey(t)
	token, err := Seal([]byte(`{"id":7,"isOpen":true,"address":"a"}`), key)
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		b := []byte(token)
		b[i] ^= 0x01
		_, err := Open(string(b), key)
		require.ErrorIs(t, err, ErrTamperOrCorruption, "flip at text offset %d was not detected", i)
	}
}

func TestOpen_DetectsEveryFlippedBlobByte(t *testing.T) {
	key := testKey(t)
	token, err := Seal([]byte("job record payload"), key)
	require.NoError(t, err)

	blob, err := tokenEncoding.DecodeString(token)
	require.NoError(t, err)

	for i := range blob {
		tampered := bytes.Clone(blob)
		tampered[i] ^= 0x80
		_, err := Open(tokenEncoding.EncodeToString(tampered), key)
		require.ErrorIs(t, err, ErrTamperOrCorruption, "flip at blob offset %d was not detected", i)
	}
}

func TestOpen_Malformed(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64", "%%%not-base64%%%"},
		{"too short", tokenEncoding.EncodeToString(make([]byte, 27))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.token, key)
			require.ErrorIs(t, err, ErrTamperOrCorruption)
		})
	}
}

func TestOpen_WrongKey(t *testing.T) {
	token, err := Seal([]byte("payload"), testKey(t))
	require.NoError(t, err)

	other, err := DeriveKey([]byte("another"))
	require.NoError(t, err)

	_, err = Open(token, other)
	require.ErrorIs(t, err, ErrTamperOrCorruption)
}

func TestSealOpen_InvalidKeyLength(t *testing.T) {
	_, err := Seal([]byte("x"), []byte("short"))
	require.ErrorIs(t, err, ErrKeyDerivation)

	_, err = Open("AAAA", make([]byte, 16))
	require.ErrorIs(t, err, ErrKeyDerivation)
	require.False(t, errors.Is(err, ErrTamperOrCorruption))
}

func TestWipe(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	Wipe(buf)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)

	Wipe(nil)
}

func TestKeySources(t *testing.T) {
	ctx := context.Background()

	k1, err := PassphraseKeySource{Passphrase: []byte("Secret Password")}.Key(ctx)
	require.NoError(t, err)
	assert.Equal(t, testKey(t), k1)

	src := Argon2KeySource{Passphrase: []byte("secret-password"), Salt: []byte("fixed-salt")}
	k2, err := src.Key(ctx)
	require.NoError(t, err)
	k3, err := src.Key(ctx)
	require.NoError(t, err)
	assert.Equal(t, k2, k3)
	assert.Len(t, k2, KeyLength)
	assert.Equal(t, "9290403300158e19f27e48e7087f7383b03065bf5b25ef23ebc40229616cd8b3", hex.EncodeToString(k2))

	_, err = Argon2KeySource{Passphrase: []byte("p")}.Key(ctx)
	require.ErrorIs(t, err, ErrKeyDerivation)
	_, err = Argon2KeySource{Salt: []byte("s")}.Key(ctx)
	require.ErrorIs(t, err, ErrKeyDerivation)
	_, err = PassphraseKeySource{}.Key(ctx)
	require.ErrorIs(t, err, ErrKeyDerivation)
}
