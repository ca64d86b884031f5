// Package filesystem holds path and key file helpers for the command.
package filesystem

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/spacemeshos/go-xofhash/hasher"
)

// GetUserHomeDirectory returns the user home directory if one is set.
func GetUserHomeDirectory() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// GetCanonicalPath returns an os-specific full path:
// - replace ~ with user's home dir path
// - expand any ${vars} or $vars
// - resolve relative paths /.../
func GetCanonicalPath(p string) string {
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\") {
		if home := GetUserHomeDirectory(); home != "" {
			p = home + p[1:]
		}
	}
	return filepath.Clean(os.ExpandEnv(p))
}

// ReadKeyFile reads a key for keyed hashing. The file holds either the hex
// encoding of the key, optionally followed by a newline, or the raw key
// bytes. Valid hex always decodes as hex, so a 32 byte file of hex digits
// is a 16 byte key and is rejected.
func ReadKeyFile(fs afero.Fs, p string) ([]byte, error) {
	data, err := afero.ReadFile(fs, GetCanonicalPath(p))
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	key := make([]byte, hex.DecodedLen(len(trimmed)))
	if _, err := hex.Decode(key, trimmed); err != nil {
		if len(data) != hasher.KeySize {
			return nil, fmt.Errorf("%w: %s is neither hex nor %d raw bytes",
				hasher.ErrInvalidKeyLength, p, hasher.KeySize)
		}
		return data, nil
	}
	if len(key) != hasher.KeySize {
		return nil, fmt.Errorf("%w: %s holds %d hex encoded bytes", hasher.ErrInvalidKeyLength, p, len(key))
	}
	return key, nil
}
