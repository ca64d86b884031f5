package engine

import (
	"fmt"
	"io"
	"math"

	"lukechampine.com/blake3"
	"lukechampine.com/blake3/guts"
)

// LukeName is the registered name of the lukechampine.com/blake3 engine.
const LukeName = "luke"

// Luke adapts lukechampine.com/blake3. Every mode addresses the whole
// 2^64-1 byte output. Derived keys are hashed with a tree over the guts
// package since the library only derives keys in one shot.
type Luke struct{}

func (Luke) Name() string { return LukeName }

func (Luke) New() Primitive {
	return &lukePrimitive{h: blake3.New(32, nil)}
}

func (Luke) NewKeyed(key []byte) (Primitive, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrKeySize, len(key))
	}
	return &lukePrimitive{h: blake3.New(32, key)}, nil
}

func (Luke) NewDerived(context string) (Primitive, error) {
	return newTreeHasher(deriveContextKey(context), guts.FlagDeriveKeyMaterial), nil
}

type lukePrimitive struct {
	h *blake3.Hasher
}

func (p *lukePrimitive) Write(b []byte) (int, error) {
	return p.h.Write(b)
}

func (p *lukePrimitive) Sum(b []byte) []byte {
	return p.h.Sum(b)
}

func (p *lukePrimitive) XOF() Stream {
	return &lukeStream{r: p.h.XOF()}
}

func (p *lukePrimitive) Clone() Primitive {
	h := *p.h
	return &lukePrimitive{h: &h}
}

func (p *lukePrimitive) Reset() {
	p.h.Reset()
}

type lukeStream struct {
	r *blake3.OutputReader
}

func (s *lukeStream) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// outputBuf is the span the output reader compresses at once. Seeks are
// kept aligned to it: the reader only refills its buffer correctly from an
// aligned offset.
const outputBuf = guts.MaxSIMD * guts.BlockSize

// SetPosition seeks to the aligned base below pos in int64 sized steps,
// then discards the remainder.
func (s *lukeStream) SetPosition(pos uint64) error {
	if _, err := s.r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	rem := pos % outputBuf
	base := pos - rem
	for base > 0 {
		step := base
		if step > math.MaxInt64 {
			step = math.MaxInt64 - math.MaxInt64%outputBuf
		}
		if _, err := s.r.Seek(int64(step), io.SeekCurrent); err != nil {
			return err
		}
		base -= step
	}
	if rem > 0 {
		var skip [outputBuf]byte
		if _, err := s.r.Read(skip[:rem]); err != nil {
			return err
		}
	}
	return nil
}

func (s *lukeStream) Clone() Stream {
	r := *s.r
	return &lukeStream{r: &r}
}
