// Package hasher implements an incremental BLAKE3 hasher whose finalized
// state can be read as a fixed digest or through independent seekable readers.
//
// Every method of Hasher and Reader runs under the object's own lock, so
// both are safe for concurrent use. Readers are snapshots: updates made to a
// Hasher after a Reader was spawned are not visible through that Reader.
package hasher

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-xofhash/engine"
)

const (
	// Size is the length of the native digest.
	Size = 32
	// KeySize is the length of the key used in keyed mode.
	KeySize = engine.KeySize
	// BlockSize is the natural write size of BLAKE3.
	BlockSize = 64
)

var _ hash.Hash = (*Hasher)(nil)

// Hasher is an incremental BLAKE3 state. It implements hash.Hash.
type Hasher struct {
	mu     sync.Mutex
	prim   engine.Primitive
	mode   Mode
	engine string
	logger *zap.Logger

	absorbed prometheus.Counter
	squeezed prometheus.Counter
	readers  prometheus.Counter
}

// New returns a Hasher. The mode follows from the options: WithKey selects
// Keyed, WithContext selects Derived, neither selects Plain.
func New(opts ...Opt) (*Hasher, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return construct(o.mode(), o)
}

// NewMode returns a Hasher in the given mode. It fails with
// ErrInvalidArgumentCount if the options do not supply exactly the
// parameters that mode needs.
func NewMode(mode Mode, opts ...Opt) (*Hasher, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if got := o.mode(); got != mode {
		constructErrors.WithLabelValues("argument_count").Inc()
		return nil, fmt.Errorf("%w: %s mode requested, parameters imply %s", ErrInvalidArgumentCount, mode, got)
	}
	return construct(mode, o)
}

// NewKeyed is a shorthand for New(WithKey(key), opts...).
func NewKeyed(key []byte, opts ...Opt) (*Hasher, error) {
	return NewMode(Keyed, append([]Opt{WithKey(key)}, opts...)...)
}

// NewDerived is a shorthand for New(WithContext(context), opts...).
func NewDerived(context string, opts ...Opt) (*Hasher, error) {
	return NewMode(Derived, append([]Opt{WithContext(context)}, opts...)...)
}

func applyOptions(opts []Opt) (*option, error) {
	o := defaultOption()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			switch {
			case errors.Is(err, ErrInvalidKeyLength):
				constructErrors.WithLabelValues("key_length").Inc()
			case errors.Is(err, ErrInvalidArgumentCount):
				constructErrors.WithLabelValues("argument_count").Inc()
			}
			return nil, err
		}
	}
	return o, nil
}

func construct(mode Mode, o *option) (*Hasher, error) {
	var (
		prim engine.Primitive
		err  error
	)
	switch mode {
	case Plain:
		prim = o.engine.New()
	case Keyed:
		prim, err = o.engine.NewKeyed(o.key)
	case Derived:
		prim, err = o.cache.derive(o.engine, o.context)
	default:
		err = fmt.Errorf("%w: unknown mode %d", ErrInvalidArgumentCount, mode)
	}
	if err != nil {
		constructErrors.WithLabelValues("engine").Inc()
		return nil, fmt.Errorf("construct %s hasher with %s: %w", mode, o.engine.Name(), err)
	}

	h := &Hasher{
		prim:     prim,
		mode:     mode,
		engine:   o.engine.Name(),
		logger:   o.logger,
		absorbed: absorbedBytes.WithLabelValues(mode.String()),
		squeezed: squeezedBytes.WithLabelValues(mode.String()),
		readers:  readersSpawned.WithLabelValues(mode.String()),
	}
	h.logger.Debug("hasher constructed",
		zap.Stringer("mode", mode),
		zap.String("engine", h.engine),
	)
	return h, nil
}

// Mode returns the construction mode.
func (h *Hasher) Mode() Mode {
	return h.mode
}

// Engine returns the name of the underlying implementation.
func (h *Hasher) Engine() string {
	return h.engine
}

// Update appends p to the input.
func (h *Hasher) Update(p []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.prim.Write(p); err != nil {
		// engine.Primitive writes cannot fail
		panic(fmt.Sprintf("%s engine write: %v", h.engine, err))
	}
	h.absorbed.Add(float64(len(p)))
}

// Write implements io.Writer. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// WriteString is like Write for strings.
func (h *Hasher) WriteString(s string) (int, error) {
	h.Update([]byte(s))
	return len(s), nil
}

// DigestFixed returns the native Size byte digest of the input so far.
func (h *Hasher) DigestFixed() (out [Size]byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	copy(out[:], h.prim.Sum(out[:0]))
	h.squeezed.Add(Size)
	return out
}

// Digest returns the first length bytes of the extendable output.
func (h *Hasher) Digest(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	out := make([]byte, length)
	if err := h.digestInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// DigestInto writes the first length bytes of the extendable output to out,
// which must be exactly length bytes long.
func (h *Hasher) DigestInto(out []byte, length int) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if len(out) != length {
		return fmt.Errorf("%w: buffer is %d bytes, requested %d", ErrBufferLengthMismatch, len(out), length)
	}
	return h.digestInto(out)
}

func (h *Hasher) digestInto(out []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.ReadFull(h.prim.XOF(), out); err != nil {
		return fmt.Errorf("read output: %w", err)
	}
	h.squeezed.Add(float64(len(out)))
	return nil
}

// Reader returns a seekable reader over the output of the input so far,
// positioned at 0. The hasher stays usable.
func (h *Hasher) Reader() *Reader {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.readers.Inc()
	h.logger.Debug("reader spawned", zap.Stringer("mode", h.mode))
	return &Reader{
		stream:   h.prim.XOF(),
		squeezed: h.squeezed,
	}
}

// Sum implements hash.Hash. It appends the Size byte digest to b.
func (h *Hasher) Sum(b []byte) []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.squeezed.Add(Size)
	return h.prim.Sum(b)
}

// Reset implements hash.Hash. It discards the input and keeps the mode.
func (h *Hasher) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prim.Reset()
}

// Size implements hash.Hash.
func (h *Hasher) Size() int { return Size }

// BlockSize implements hash.Hash.
func (h *Hasher) BlockSize() int { return BlockSize }

// Clone returns an independent Hasher with the same input and mode.
func (h *Hasher) Clone() *Hasher {
	h.mu.Lock()
	defer h.mu.Unlock()
	return &Hasher{
		prim:     h.prim.Clone(),
		mode:     h.mode,
		engine:   h.engine,
		logger:   h.logger,
		absorbed: h.absorbed,
		squeezed: h.squeezed,
		readers:  h.readers,
	}
}
