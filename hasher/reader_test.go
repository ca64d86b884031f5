package hasher

import (
	"bytes"
	"encoding/hex"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-xofhash/engine"
)

func abcReader(tb testing.TB, e engine.Engine) (*Hasher, *Reader) {
	tb.Helper()
	h := newPlain(tb, e)
	h.Update([]byte("abc"))
	return h, h.Reader()
}

func TestReaderFill(t *testing.T) {
	for _, e := range engines() {
		t.Run(e.Name(), func(t *testing.T) {
			h, r := abcReader(t, e)
			full, err := h.Digest(500)
			require.NoError(t, err)
			require.Equal(t, abcHex, hex.EncodeToString(full[:Size]))

			first, err := r.Fill(250)
			require.NoError(t, err)
			second, err := r.Fill(250)
			require.NoError(t, err)
			require.Equal(t, full, append(first, second...))
			require.EqualValues(t, 500, r.Position())

			require.NoError(t, r.SetPosition(100))
			mid, err := r.Fill(100)
			require.NoError(t, err)
			require.Equal(t, full[100:200], mid)
			require.EqualValues(t, 200, r.Position())

			empty, err := r.Fill(0)
			require.NoError(t, err)
			require.Empty(t, empty)
			require.EqualValues(t, 200, r.Position())

			_, err = r.Fill(-1)
			require.ErrorIs(t, err, ErrInvalidLength)
		})
	}
}

func TestReaderSplitFills(t *testing.T) {
	_, r := abcReader(t, engine.Zeebo{})
	full, err := r.Clone().Fill(4096)
	require.NoError(t, err)

	var got []byte
	for _, n := range []int{1, 63, 64, 65, 127, 1, 1024, 2751} {
		part, err := r.Fill(n)
		require.NoError(t, err)
		got = append(got, part...)
	}
	require.Equal(t, full, got)
}

func TestReaderFillInto(t *testing.T) {
	h, r := abcReader(t, engine.Zeebo{})
	full, err := h.Digest(64)
	require.NoError(t, err)

	out := make([]byte, 64)
	require.NoError(t, r.FillInto(out, 64))
	require.Equal(t, full, out)

	require.ErrorIs(t, r.FillInto(out, 63), ErrBufferLengthMismatch)
	require.ErrorIs(t, r.FillInto(out, -1), ErrInvalidLength)
	require.EqualValues(t, 64, r.Position())
}

func TestReaderRead(t *testing.T) {
	h, r := abcReader(t, engine.Zeebo{})
	full, err := h.Digest(300)
	require.NoError(t, err)

	got, err := io.ReadAll(io.LimitReader(r, 300))
	require.NoError(t, err)
	require.Equal(t, full, got)

	n, err := r.Read(nil)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReaderSeek(t *testing.T) {
	h, r := abcReader(t, engine.Zeebo{})
	full, err := h.Digest(1000)
	require.NoError(t, err)

	pos, err := r.Seek(500, io.SeekStart)
	require.NoError(t, err)
	require.EqualValues(t, 500, pos)

	pos, err = r.Seek(-100, io.SeekCurrent)
	require.NoError(t, err)
	require.EqualValues(t, 400, pos)

	buf := make([]byte, 10)
	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)
	require.Equal(t, full[400:410], buf)

	_, err = r.Seek(-411, io.SeekCurrent)
	require.ErrorIs(t, err, ErrPositionOutOfRange)
	require.EqualValues(t, 410, r.Position())

	// io.SeekEnd lands beyond the int64 range
	_, err = r.Seek(-1, io.SeekEnd)
	require.ErrorIs(t, err, ErrPositionOutOfRange)

	_, err = r.Seek(0, 42)
	require.Error(t, err)
	require.EqualValues(t, 410, r.Position())
}

func TestReaderEndOfOutput(t *testing.T) {
	h, r := abcReader(t, engine.Luke{})
	require.NoError(t, r.SetPosition(MaxOutput-10))

	tail, err := r.Clone().Fill(10)
	require.NoError(t, err)

	_, err = r.Fill(11)
	require.ErrorIs(t, err, ErrPositionOutOfRange)
	require.Equal(t, MaxOutput-10, r.Position())

	buf := make([]byte, 32)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, tail, buf[:n])
	require.Equal(t, MaxOutput, r.Position())

	n, err = r.Read(buf)
	require.ErrorIs(t, err, io.EOF)
	require.Zero(t, n)

	empty, err := r.Fill(0)
	require.NoError(t, err)
	require.Empty(t, empty)

	// seeking back still works after reaching the end
	require.NoError(t, r.SetPosition(0))
	head, err := r.Fill(Size)
	require.NoError(t, err)
	digest := h.DigestFixed()
	require.Equal(t, digest[:], head)
}

// zeebo rejects positions past math.MaxInt64
func TestReaderZeeboRange(t *testing.T) {
	_, r := abcReader(t, engine.Zeebo{})
	require.NoError(t, r.SetPosition(math.MaxInt64))
	require.EqualValues(t, uint64(math.MaxInt64), r.Position())

	err := r.SetPosition(math.MaxInt64 + 1)
	require.ErrorIs(t, err, ErrPositionOutOfRange)
	require.ErrorIs(t, err, engine.ErrSeekRange)
	require.EqualValues(t, uint64(math.MaxInt64), r.Position())
}

func TestReaderHighPositionsEveryMode(t *testing.T) {
	for _, tc := range []struct {
		desc string
		opts []Opt
	}{
		{"plain", nil},
		{"keyed", []Opt{WithKey(testKey(1))}},
		{"derived", []Opt{WithContext("xofhash reader test")}},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			h, err := New(tc.opts...)
			require.NoError(t, err)
			h.Update([]byte("abc"))
			r := h.Reader()

			base := uint64(1 << 63)
			require.NoError(t, r.SetPosition(base))
			full, err := r.Fill(3000)
			require.NoError(t, err)
			require.Equal(t, base+3000, r.Position())

			for _, off := range []uint64{1, 63, 64, 1023, 1024, 1500} {
				require.NoError(t, r.SetPosition(base+off))
				got, err := r.Fill(500)
				require.NoError(t, err)
				require.Equal(t, full[off:off+500], got, "offset %d", off)
			}

			// below the boundary the output continues into it
			require.NoError(t, r.SetPosition(base-100))
			across, err := r.Fill(200)
			require.NoError(t, err)
			require.Equal(t, full[:100], across[100:])

			require.NoError(t, r.SetPosition(MaxOutput-10))
			tail, err := r.Fill(10)
			require.NoError(t, err)
			require.Len(t, tail, 10)
			_, err = r.Read(make([]byte, 1))
			require.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestReaderEnginesAgree(t *testing.T) {
	_, z := abcReader(t, engine.Zeebo{})
	_, l := abcReader(t, engine.Luke{})
	for _, pos := range []uint64{0, 1, 63, 64, 65, 1000, 1024, 1 << 32, 1<<40 + 17, math.MaxInt64 - 100} {
		require.NoError(t, z.SetPosition(pos))
		require.NoError(t, l.SetPosition(pos))
		zb, err := z.Fill(100)
		require.NoError(t, err)
		lb, err := l.Fill(100)
		require.NoError(t, err)
		require.Equal(t, zb, lb, "position %d", pos)
	}
}

func TestReaderClone(t *testing.T) {
	_, r := abcReader(t, engine.Zeebo{})
	_, err := r.Fill(40)
	require.NoError(t, err)

	c := r.Clone()
	require.Equal(t, r.Position(), c.Position())

	a, err := r.Fill(20)
	require.NoError(t, err)
	require.NoError(t, r.SetPosition(1000))

	b, err := c.Fill(20)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.EqualValues(t, 60, c.Position())
}

func TestReaderString(t *testing.T) {
	_, r := abcReader(t, engine.Luke{})
	require.NoError(t, r.SetPosition(77))
	require.Equal(t, abcHex, r.String())
	require.EqualValues(t, 77, r.Position())
}

func TestReadersAreIndependent(t *testing.T) {
	h := newPlain(t, engine.Zeebo{})
	h.Update([]byte("hello"))
	a := h.Reader()
	b := h.Reader()

	_, err := a.Fill(100)
	require.NoError(t, err)
	require.Zero(t, b.Position())

	head, err := b.Fill(48)
	require.NoError(t, err)
	require.Equal(t, hello48Hex, hex.EncodeToString(head))
}

func TestReaderConcurrentFills(t *testing.T) {
	const (
		workers = 8
		fills   = 32
		chunk   = 64
	)
	h, r := abcReader(t, engine.Zeebo{})
	full, err := h.Digest(workers * fills * chunk)
	require.NoError(t, err)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		chunks [][]byte
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range fills {
				out, err := r.Fill(chunk)
				if err != nil {
					panic(err)
				}
				mu.Lock()
				chunks = append(chunks, out)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, workers*fills*chunk, r.Position())
	seen := make(map[int]bool)
	for _, c := range chunks {
		found := -1
		for i := 0; i < workers*fills; i++ {
			if bytes.Equal(full[i*chunk:(i+1)*chunk], c) {
				found = i
				break
			}
		}
		require.NotEqual(t, -1, found)
		require.False(t, seen[found], "chunk %d returned twice", found)
		seen[found] = true
	}
}
