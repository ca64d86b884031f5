// Package hash provides one-shot BLAKE3 helpers built on the hasher package.
package hash

import (
	"crypto/subtle"
	"fmt"

	"github.com/spacemeshos/go-xofhash/hasher"
)

// Size is the length of the native digest (32 bytes).
const Size = hasher.Size

// Sum returns the native digest of data.
func Sum(data []byte) [Size]byte {
	h := GetHasher()
	defer PutHasher(h)
	h.Update(data)
	return h.DigestFixed()
}

// SumN returns length bytes of the extendable output of data.
func SumN(data []byte, length int) ([]byte, error) {
	h := GetHasher()
	defer PutHasher(h)
	h.Update(data)
	return h.Digest(length)
}

// KeyedSum returns length bytes of the keyed output of data. key must be
// hasher.KeySize bytes.
func KeyedSum(key, data []byte, length int) ([]byte, error) {
	h, err := hasher.NewKeyed(key)
	if err != nil {
		return nil, fmt.Errorf("keyed sum: %w", err)
	}
	h.Update(data)
	return h.Digest(length)
}

// DeriveKey returns length bytes of key material derived from material under
// context. The context should be a hardcoded, globally unique string.
func DeriveKey(context string, material []byte, length int) ([]byte, error) {
	h, err := hasher.NewDerived(context)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	h.Update(material)
	return h.Digest(length)
}

// Equal reports whether two digests are equal in constant time.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
