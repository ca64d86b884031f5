package xofhash

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/go-xofhash/engine"
	"github.com/spacemeshos/go-xofhash/filesystem"
	"github.com/spacemeshos/go-xofhash/hash"
	"github.com/spacemeshos/go-xofhash/hasher"
	"github.com/spacemeshos/go-xofhash/log"
)

const stdinName = "-"

// ErrDuplicateStdin is returned when stdin is listed as more than one input.
var ErrDuplicateStdin = errors.New("stdin listed more than once")

// job is one input to hash and the output window to read from it.
type job struct {
	name   string
	offset uint64
	length int
}

// hashing holds the hasher construction shared by all jobs of a command.
type hashing struct {
	opts []hasher.Opt
	// pooled hashers are used for plain mode on the default engine
	pooled bool
}

func (a *app) hashing(flags *pflag.FlagSet) (*hashing, error) {
	e, err := engine.Lookup(a.conf.HASH.Engine)
	if err != nil {
		return nil, log.ErrBadFlags(err)
	}
	cache, err := hasher.NewContextCache(a.conf.HASH.ContextCacheSize)
	if err != nil {
		return nil, log.ErrBadFlags(err)
	}
	opts := []hasher.Opt{
		hasher.WithEngine(e),
		hasher.WithLogger(a.logger),
		hasher.WithContextCache(cache),
	}

	keyHex, _ := flags.GetString("key")
	keyFile, _ := flags.GetString("key-file")
	deriveCtx, _ := flags.GetString("derive-key")
	set := 0
	for _, name := range []string{"key", "key-file", "derive-key"} {
		if flags.Changed(name) {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("%w: --key, --key-file and --derive-key are exclusive", hasher.ErrInvalidArgumentCount)
	}

	switch {
	case flags.Changed("key"):
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("decode --key: %w", err)
		}
		opts = append(opts, hasher.WithKey(key))
	case flags.Changed("key-file"):
		key, err := filesystem.ReadKeyFile(a.fs, keyFile)
		if err != nil {
			return nil, log.ErrReadKey(keyFile, err)
		}
		opts = append(opts, hasher.WithKey(key))
	case flags.Changed("derive-key"):
		opts = append(opts, hasher.WithContext(deriveCtx))
	default:
		return &hashing{opts: opts, pooled: e.Name() == engine.Default}, nil
	}

	// fail before any input is read
	if _, err := hasher.New(opts...); err != nil {
		return nil, err
	}
	return &hashing{opts: opts}, nil
}

// hashAll hashes the jobs with at most a.conf.HASH.Jobs running at once and
// returns the outputs in job order.
func (a *app) hashAll(ctx context.Context, command string, hs *hashing, jobs []job, stdin io.Reader) ([][]byte, error) {
	stdinJobs := 0
	for _, j := range jobs {
		if j.name == stdinName {
			stdinJobs++
		}
	}
	if stdinJobs > 1 {
		return nil, fmt.Errorf("%w: %d times", ErrDuplicateStdin, stdinJobs)
	}
	out := make([][]byte, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.conf.HASH.Jobs)
	for i, j := range jobs {
		eg.Go(func() error {
			digest, err := a.hashOne(ctx, command, hs, j, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			out[i] = digest
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *app) hashOne(ctx context.Context, command string, hs *hashing, j job, stdin io.Reader) ([]byte, error) {
	var src io.Reader
	if j.name == stdinName {
		src = stdin
	} else {
		f, err := a.fs.Open(j.name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	var h *hasher.Hasher
	if hs.pooled {
		h = hash.GetHasher()
		defer hash.PutHasher(h)
	} else {
		var err error
		h, err = hasher.New(hs.opts...)
		if err != nil {
			return nil, err
		}
	}

	start := a.clock.Now()
	n, err := io.Copy(h, ctxReader{ctx: ctx, r: src})
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	r := h.Reader()
	if err := r.SetPosition(j.offset); err != nil {
		return nil, err
	}
	digest, err := r.Fill(j.length)
	if err != nil {
		return nil, err
	}
	took := a.clock.Since(start)
	fileDuration.WithLabelValues(command).Observe(took.Seconds())
	a.logger.Debug("input hashed",
		zap.String("name", j.name),
		zap.Int64("bytes", n),
		zap.Stringer("mode", h.Mode()),
		zap.Duration("took", took),
	)
	return digest, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
