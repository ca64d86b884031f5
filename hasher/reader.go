package hasher

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-xofhash/engine"
)

// MaxOutput is the number of addressable output bytes. Positions range
// over [0, MaxOutput].
const MaxOutput uint64 = math.MaxUint64

// Reader reads the extendable output of a finalized Hasher. The output is a
// function of the input, the mode and the byte offset, so a Reader can jump
// to any position without producing the bytes in between.
type Reader struct {
	mu     sync.Mutex
	stream engine.Stream
	pos    uint64

	squeezed prometheus.Counter
}

// Position returns the offset of the next byte Fill or Read will return.
func (r *Reader) Position() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}

// Fill returns the next length bytes and advances the position by length.
func (r *Reader) Fill(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	out := make([]byte, length)
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fill(out); err != nil {
		return nil, err
	}
	return out, nil
}

// FillInto is like Fill but writes into out, which must be exactly length
// bytes long.
func (r *Reader) FillInto(out []byte, length int) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if len(out) != length {
		return fmt.Errorf("%w: buffer is %d bytes, requested %d", ErrBufferLengthMismatch, len(out), length)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fill(out)
}

// Read implements io.Reader. It fills p unless the end of the output is
// reached, and returns io.EOF at MaxOutput.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pos == MaxOutput {
		return 0, io.EOF
	}
	if rem := MaxOutput - r.pos; uint64(len(p)) > rem {
		p = p[:rem]
	}
	if err := r.fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (r *Reader) fill(out []byte) error {
	if uint64(len(out)) > MaxOutput-r.pos {
		return fmt.Errorf("%w: %d bytes at %d", ErrPositionOutOfRange, len(out), r.pos)
	}
	if _, err := io.ReadFull(r.stream, out); err != nil {
		// put the stream back where the cursor says it is
		_ = r.stream.SetPosition(r.pos)
		return fmt.Errorf("read output: %w", err)
	}
	r.pos += uint64(len(out))
	r.squeezed.Add(float64(len(out)))
	return nil
}

// SetPosition moves the reader to an absolute offset.
func (r *Reader) SetPosition(offset uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setPosition(offset)
}

func (r *Reader) setPosition(offset uint64) error {
	if err := r.stream.SetPosition(offset); err != nil {
		if errors.Is(err, engine.ErrSeekRange) {
			return fmt.Errorf("%w: %w", ErrPositionOutOfRange, err)
		}
		return fmt.Errorf("set position %d: %w", offset, err)
	}
	r.pos = offset
	return nil
}

// Seek implements io.Seeker. io.SeekEnd is relative to MaxOutput. Targets
// above math.MaxInt64 cannot be reported through the int64 result and are
// rejected; use SetPosition for them.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var base uint64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = r.pos
	case io.SeekEnd:
		base = MaxOutput
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}

	var target uint64
	if offset < 0 {
		back := uint64(-offset) // 2^63 for math.MinInt64
		if back > base {
			return 0, fmt.Errorf("%w: seek before start", ErrPositionOutOfRange)
		}
		target = base - back
	} else {
		if uint64(offset) > MaxOutput-base {
			return 0, fmt.Errorf("%w: seek past end", ErrPositionOutOfRange)
		}
		target = base + uint64(offset)
	}
	if target > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d does not fit the seek result", ErrPositionOutOfRange, target)
	}
	if err := r.setPosition(target); err != nil {
		return 0, err
	}
	return int64(target), nil
}

// Clone returns an independent Reader over the same output, at the same
// position.
func (r *Reader) Clone() *Reader {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Reader{
		stream:   r.stream.Clone(),
		pos:      r.pos,
		squeezed: r.squeezed,
	}
}

// String returns the hex encoded first Size bytes of the output. The
// position is not changed.
func (r *Reader) String() string {
	r.mu.Lock()
	s := r.stream.Clone()
	r.mu.Unlock()

	if err := s.SetPosition(0); err != nil {
		return ""
	}
	var head [Size]byte
	if _, err := io.ReadFull(s, head[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(head[:])
}
