package engine

import (
	"errors"
	"fmt"
	"sort"
)

// KeySize is the length of the key accepted by keyed primitives.
const KeySize = 32

var (
	// ErrSeekRange is returned when an engine cannot address the requested position.
	ErrSeekRange = errors.New("position not addressable by engine")
	// ErrUnknown is returned by Lookup for unregistered names.
	ErrUnknown = errors.New("unknown engine")
	// ErrKeySize is returned by NewKeyed when the key is not KeySize bytes.
	ErrKeySize = errors.New("invalid key size")
)

// Default is the engine used when none is configured. It is the only
// engine that serves every position in every mode.
const Default = LukeName

var engines = map[string]Engine{
	ZeeboName: Zeebo{},
	LukeName:  Luke{},
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, error) {
	if name == "" {
		name = Default
	}
	e, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (options %v)", ErrUnknown, name, Names())
	}
	return e, nil
}

// Names lists registered engines in lexical order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
