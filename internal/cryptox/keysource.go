package cryptox

import (
	"context"
	"fmt"
)

// KeySource yields the symmetric key used to seal job records.
//
// Implementations must return the same key for the same configuration on every
// call and in every process; the key itself is never persisted.
type KeySource interface {
	Key(ctx context.Context) ([]byte, error)
}

// PassphraseKeySource derives the key with DeriveKey.
type PassphraseKeySource struct {
	Passphrase []byte
}

func (s PassphraseKeySource) Key(ctx context.Context) ([]byte, error) {
	return DeriveKey(s.Passphrase)
}

// Argon2KeySource derives the key with argon2id using a fixed salt.
type Argon2KeySource struct {
	Passphrase []byte
	Salt       []byte
}

func (s Argon2KeySource) Key(ctx context.Context) ([]byte, error) {
	if len(s.Passphrase) == 0 {
		return nil, fmt.Errorf("%w: empty passphrase", ErrKeyDerivation)
	}
	if len(s.Salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrKeyDerivation)
	}
	return DeriveMasterKey(s.Passphrase, s.Salt), nil
}
