package engine

import (
	"io"
	"math"
	"math/bits"

	"lukechampine.com/blake3/guts"
)

// treeHasher is an incremental BLAKE3 tree built from the guts compression
// functions. lukechampine.com/blake3 exports hashers for the plain and keyed
// modes only, derived keys go through this.
type treeHasher struct {
	key   [8]uint32
	flags uint32

	// one subtree root per height, occupied where the bit in counter is set
	stack   [64][8]uint32
	counter uint64 // completed chunks

	buf    [guts.ChunkSize]byte
	buflen int
}

func newTreeHasher(key [8]uint32, flags uint32) *treeHasher {
	return &treeHasher{key: key, flags: flags}
}

// deriveContextKey hashes context into the key used for key material.
func deriveContextKey(context string) [8]uint32 {
	h := newTreeHasher(guts.IV, guts.FlagDeriveKeyContext)
	h.Write([]byte(context))
	words := guts.CompressNode(h.root())
	var key [8]uint32
	copy(key[:], words[:8])
	return key
}

func (h *treeHasher) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		// a full chunk is compressed only once more input arrives, the last
		// chunk must stay buffered for root
		if h.buflen == guts.ChunkSize {
			h.push(guts.ChainingValue(guts.CompressChunk(h.buf[:], &h.key, h.counter, h.flags)))
			h.buflen = 0
		}
		c := copy(h.buf[h.buflen:], p)
		h.buflen += c
		p = p[c:]
	}
	return n, nil
}

func (h *treeHasher) push(cv [8]uint32) {
	i := 0
	for h.counter&(1<<i) != 0 {
		cv = guts.ChainingValue(guts.ParentNode(h.stack[i], cv, &h.key, h.flags))
		i++
	}
	h.stack[i] = cv
	h.counter++
}

// root merges the buffered chunk with the stack without modifying either.
func (h *treeHasher) root() guts.Node {
	n := guts.CompressChunk(h.buf[:h.buflen], &h.key, h.counter, h.flags)
	for i := bits.TrailingZeros64(h.counter); i < bits.Len64(h.counter); i++ {
		if h.counter&(1<<i) != 0 {
			n = guts.ParentNode(h.stack[i], guts.ChainingValue(n), &h.key, h.flags)
		}
	}
	n.Flags |= guts.FlagRoot
	return n
}

func (h *treeHasher) Sum(b []byte) []byte {
	out := guts.WordsToBytes(guts.CompressNode(h.root()))
	return append(b, out[:32]...)
}

func (h *treeHasher) XOF() Stream {
	return &nodeStream{n: h.root()}
}

func (h *treeHasher) Clone() Primitive {
	c := *h
	return &c
}

func (h *treeHasher) Reset() {
	h.counter = 0
	h.buflen = 0
}

// nodeStream is the output of a root node. It addresses all 2^64-1 bytes and
// recomputes its buffer whenever the position leaves the buffered span.
type nodeStream struct {
	n      guts.Node
	off    uint64
	buf    [outputBuf]byte
	base   uint64
	filled bool
}

func (s *nodeStream) Read(p []byte) (int, error) {
	if s.off == math.MaxUint64 {
		return 0, io.EOF
	}
	if rem := math.MaxUint64 - s.off; uint64(len(p)) > rem {
		p = p[:rem]
	}
	n := len(p)
	for len(p) > 0 {
		base := s.off - s.off%outputBuf
		if !s.filled || s.base != base {
			node := s.n
			node.Counter = base / guts.BlockSize
			guts.CompressBlocks(&s.buf, node)
			s.base, s.filled = base, true
		}
		c := copy(p, s.buf[s.off-base:])
		p = p[c:]
		s.off += uint64(c)
	}
	return n, nil
}

func (s *nodeStream) SetPosition(pos uint64) error {
	s.off = pos
	return nil
}

func (s *nodeStream) Clone() Stream {
	c := *s
	return &c
}
