package hasher

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-xofhash/engine"
)

type option struct {
	key        []byte
	keySet     bool
	context    string
	contextSet bool

	engine engine.Engine
	logger *zap.Logger
	cache  *ContextCache
}

func defaultOption() *option {
	return &option{
		engine: engine.Zeebo{},
		logger: zap.NewNop(),
		cache:  defaultCache,
	}
}

// mode is implied by the parameters that were supplied.
func (o *option) mode() Mode {
	switch {
	case o.keySet:
		return Keyed
	case o.contextSet:
		return Derived
	default:
		return Plain
	}
}

// Opt modifies Hasher construction.
type Opt func(*option) error

// WithKey selects keyed mode with a KeySize byte key. The key is copied.
func WithKey(key []byte) Opt {
	return func(o *option) error {
		if o.keySet {
			return fmt.Errorf("%w: key already set", ErrInvalidArgumentCount)
		}
		if o.contextSet {
			return fmt.Errorf("%w: key and context are mutually exclusive", ErrInvalidArgumentCount)
		}
		if len(key) != KeySize {
			return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
		}
		o.key = bytes.Clone(key)
		o.keySet = true
		return nil
	}
}

// WithContext selects derived mode. The empty string is a valid context.
func WithContext(context string) Opt {
	return func(o *option) error {
		if o.contextSet {
			return fmt.Errorf("%w: context already set", ErrInvalidArgumentCount)
		}
		if o.keySet {
			return fmt.Errorf("%w: key and context are mutually exclusive", ErrInvalidArgumentCount)
		}
		o.context = context
		o.contextSet = true
		return nil
	}
}

// WithEngine sets the BLAKE3 implementation. Defaults to engine.Zeebo.
func WithEngine(e engine.Engine) Opt {
	return func(o *option) error {
		if e != nil {
			o.engine = e
		}
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(o *option) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// WithContextCache sets the cache of derived prototypes used in derived mode.
func WithContextCache(cache *ContextCache) Opt {
	return func(o *option) error {
		if cache != nil {
			o.cache = cache
		}
		return nil
	}
}
