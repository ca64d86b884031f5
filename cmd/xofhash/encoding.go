package xofhash

import (
	"encoding/hex"
	"fmt"

	"github.com/multiformats/go-multibase"

	"github.com/spacemeshos/go-xofhash/config"
)

var multibases = map[string]multibase.Encoding{
	config.Base64Encoding:    multibase.Base64,
	config.Base32Encoding:    multibase.Base32,
	config.Base58BTCEncoding: multibase.Base58BTC,
}

// encode renders a digest. Hex is printed bare, the other encodings carry
// their multibase prefix.
func encode(encoding string, digest []byte) (string, error) {
	if encoding == config.HexEncoding {
		return hex.EncodeToString(digest), nil
	}
	base, ok := multibases[encoding]
	if !ok {
		return "", fmt.Errorf("unknown encoding %q", encoding)
	}
	return multibase.Encode(base, digest)
}

func decode(encoding, s string) ([]byte, error) {
	if encoding == config.HexEncoding {
		return hex.DecodeString(s)
	}
	want, ok := multibases[encoding]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
	got, data, err := multibase.Decode(s)
	if err != nil {
		return nil, err
	}
	if got != want {
		return nil, fmt.Errorf("digest is not %s encoded", encoding)
	}
	return data, nil
}
