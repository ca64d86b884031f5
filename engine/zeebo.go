package engine

import (
	"fmt"
	"io"
	"math"

	"github.com/zeebo/blake3"
)

// ZeeboName is the registered name of the github.com/zeebo/blake3 engine.
const ZeeboName = "zeebo"

// Zeebo adapts github.com/zeebo/blake3. It supports every mode, but its
// digest seeks with an int64 so positions above math.MaxInt64 are rejected.
// Select it only where outputs stay below that offset.
type Zeebo struct{}

func (Zeebo) Name() string { return ZeeboName }

func (Zeebo) New() Primitive {
	return &zeeboPrimitive{h: blake3.New()}
}

func (Zeebo) NewKeyed(key []byte) (Primitive, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrKeySize, len(key))
	}
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	return &zeeboPrimitive{h: h}, nil
}

func (Zeebo) NewDerived(context string) (Primitive, error) {
	return &zeeboPrimitive{h: blake3.NewDeriveKey(context)}, nil
}

type zeeboPrimitive struct {
	h *blake3.Hasher
}

func (p *zeeboPrimitive) Write(b []byte) (int, error) {
	return p.h.Write(b)
}

func (p *zeeboPrimitive) Sum(b []byte) []byte {
	return p.h.Sum(b)
}

func (p *zeeboPrimitive) XOF() Stream {
	return &zeeboStream{d: p.h.Digest()}
}

func (p *zeeboPrimitive) Clone() Primitive {
	return &zeeboPrimitive{h: p.h.Clone()}
}

func (p *zeeboPrimitive) Reset() {
	p.h.Reset()
}

type zeeboStream struct {
	d *blake3.Digest
}

func (s *zeeboStream) Read(p []byte) (int, error) {
	return s.d.Read(p)
}

func (s *zeeboStream) SetPosition(pos uint64) error {
	if pos > math.MaxInt64 {
		return fmt.Errorf("%w: %d > %d", ErrSeekRange, pos, uint64(math.MaxInt64))
	}
	_, err := s.d.Seek(int64(pos), io.SeekStart)
	return err
}

func (s *zeeboStream) Clone() Stream {
	d := *s.d
	return &zeeboStream{d: &d}
}
