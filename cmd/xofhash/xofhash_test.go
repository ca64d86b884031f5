package xofhash

import (
	"bytes"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/multiformats/go-multibase"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	cmdp "github.com/spacemeshos/go-xofhash/cmd"
	"github.com/spacemeshos/go-xofhash/engine"
	"github.com/spacemeshos/go-xofhash/hash"
	"github.com/spacemeshos/go-xofhash/hasher"
)

const (
	abcHex     = "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85"
	helloHex   = "ea8f163db38682925e4491c5e58d4bb3506ef8c14eb78a86e908c5624a67200f"
	hello48Hex = "ea8f163db38682925e4491c5e58d4bb3506ef8c14eb78a86e908c5624a67200fe992405f0d785b599a2e3387f6d34d01"
	goodbyeHex = "f94a694227c5f31a07551908ad5fb252f5f0964030df5f2f200adedfae4d9b69"
)

func testFs(tb testing.TB) afero.Fs {
	tb.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range map[string]string{
		"/data/abc":     "abc",
		"/data/hello":   "hello",
		"/data/goodbye": "goodbye",
	} {
		require.NoError(tb, afero.WriteFile(fs, name, []byte(content), 0o600))
	}
	return fs
}

func execute(tb testing.TB, fs afero.Fs, stdin string, args ...string) (string, error) {
	tb.Helper()
	c := New(WithFs(fs), WithClock(clockwork.NewFakeClock()))
	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetIn(strings.NewReader(stdin))
	c.SetArgs(args)
	err := c.Execute()
	return stdout.String(), err
}

func TestSum(t *testing.T) {
	fs := testFs(t)
	for _, tc := range []struct {
		desc  string
		stdin string
		args  []string
		want  string
	}{
		{
			desc: "files in argument order",
			args: []string{"sum", "/data/hello", "/data/abc"},
			want: helloHex + "  /data/hello\n" + abcHex + "  /data/abc\n",
		},
		{
			desc:  "stdin",
			stdin: "goodbye",
			args:  []string{"sum"},
			want:  goodbyeHex + "  -\n",
		},
		{
			desc:  "dash is stdin",
			stdin: "abc",
			args:  []string{"sum", "--no-names", "-"},
			want:  abcHex + "\n",
		},
		{
			desc: "length",
			args: []string{"sum", "--no-names", "--length", "48", "/data/hello"},
			want: hello48Hex + "\n",
		},
		{
			desc: "offset",
			args: []string{"sum", "--no-names", "-l", "16", "--offset", "16", "/data/hello"},
			want: hello48Hex[32:64] + "\n",
		},
		{
			desc: "luke engine",
			args: []string{"sum", "--engine", "luke", "--no-names", "-l", "48", "/data/hello"},
			want: hello48Hex + "\n",
		},
		{
			desc: "parallel jobs keep order",
			args: []string{"sum", "-j", "2", "--no-names", "/data/abc", "/data/hello", "/data/goodbye", "/data/abc"},
			want: strings.Join([]string{abcHex, helloHex, goodbyeHex, abcHex}, "\n") + "\n",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			out, err := execute(t, fs, tc.stdin, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestSumEncodings(t *testing.T) {
	fs := testFs(t)
	digest := hash.Sum([]byte("abc"))
	for _, tc := range []struct {
		name string
		base multibase.Encoding
	}{
		{"base64", multibase.Base64},
		{"base32", multibase.Base32},
		{"base58btc", multibase.Base58BTC},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want, err := multibase.Encode(tc.base, digest[:])
			require.NoError(t, err)
			out, err := execute(t, fs, "", "sum", "--no-names", "--encoding", tc.name, "/data/abc")
			require.NoError(t, err)
			require.Equal(t, want+"\n", out)
		})
	}

	_, err := execute(t, fs, "", "sum", "--encoding", "base2", "/data/abc")
	require.Error(t, err)
}

func TestSumModes(t *testing.T) {
	fs := testFs(t)
	key := bytes.Repeat([]byte{0x11}, hasher.KeySize)
	require.NoError(t, afero.WriteFile(fs, "/keys/app.key", key, 0o600))

	keyed, err := hash.KeyedSum(key, []byte("abc"), 40)
	require.NoError(t, err)
	derived, err := hash.DeriveKey("xofhash cli test", []byte("abc"), 32)
	require.NoError(t, err)
	derivedEmpty, err := hash.DeriveKey("", []byte("abc"), 32)
	require.NoError(t, err)

	out, err := execute(t, fs, "", "sum", "--no-names", "-l", "40", "--key", hex.EncodeToString(key), "/data/abc")
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(keyed)+"\n", out)

	out, err = execute(t, fs, "", "sum", "--no-names", "-l", "40", "--key-file", "/keys/app.key", "/data/abc")
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(keyed)+"\n", out)

	out, err = execute(t, fs, "", "sum", "--no-names", "--derive-key", "xofhash cli test", "/data/abc")
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(derived)+"\n", out)

	out, err = execute(t, fs, "", "sum", "--no-names", "--derive-key", "", "/data/abc")
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(derivedEmpty)+"\n", out)
}

func TestSumErrors(t *testing.T) {
	fs := testFs(t)
	key := hex.EncodeToString(bytes.Repeat([]byte{1}, hasher.KeySize))

	_, err := execute(t, fs, "", "sum", "--key", key, "--derive-key", "ctx", "/data/abc")
	require.ErrorIs(t, err, hasher.ErrInvalidArgumentCount)

	_, err = execute(t, fs, "", "sum", "--key", key[:62], "/data/abc")
	require.ErrorIs(t, err, hasher.ErrInvalidKeyLength)

	_, err = execute(t, fs, "", "sum", "--key", "zz", "/data/abc")
	require.Error(t, err)

	_, err = execute(t, fs, "", "sum", "--key-file", "/keys/missing", "/data/abc")
	require.ErrorContains(t, err, "could not read key file")

	_, err = execute(t, fs, "abc", "sum", "-", "/data/abc", "-")
	require.ErrorIs(t, err, ErrDuplicateStdin)

	_, err = execute(t, fs, "", "sum", "/data/abc", "/data/missing")
	require.ErrorContains(t, err, "/data/missing")

	_, err = execute(t, fs, "", "sum", "--jobs", "0", "/data/abc")
	require.Error(t, err)

	// zeebo cannot address positions past math.MaxInt64
	_, err = execute(t, fs, "", "sum", "--engine", engine.ZeeboName, "--offset", "18446744073709551000", "/data/abc")
	require.ErrorIs(t, err, hasher.ErrPositionOutOfRange)
}

func TestSumHighOffsets(t *testing.T) {
	fs := testFs(t)
	key := bytes.Repeat([]byte{0x11}, hasher.KeySize)
	const offset = uint64(1<<63 + 777)

	for _, tc := range []struct {
		desc string
		args []string
		opts []hasher.Opt
	}{
		{"plain", nil, nil},
		{"keyed", []string{"--key", hex.EncodeToString(key)}, []hasher.Opt{hasher.WithKey(key)}},
		{"derived", []string{"--derive-key", "ctx"}, []hasher.Opt{hasher.WithContext("ctx")}},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			h, err := hasher.New(tc.opts...)
			require.NoError(t, err)
			h.Update([]byte("abc"))
			r := h.Reader()
			require.NoError(t, r.SetPosition(offset))
			want, err := r.Fill(8)
			require.NoError(t, err)

			args := append([]string{"sum", "--no-names", "-l", "8", "--offset", "9223372036854776585"}, tc.args...)
			out, err := execute(t, fs, "", append(args, "/data/abc")...)
			require.NoError(t, err)
			require.Equal(t, hex.EncodeToString(want)+"\n", out)
		})
	}

	out, err := execute(t, fs, "", "sum", "--no-names", "-l", "8", "--offset", "18446744073709551000", "/data/abc")
	require.NoError(t, err)
	require.Len(t, strings.TrimSpace(out), 16)
}

func TestSumOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sums.txt")
	out, err := execute(t, testFs(t), "", "sum", "-o", path, "/data/abc")
	require.NoError(t, err)
	require.Empty(t, out)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, abcHex+"  /data/abc\n", string(written))
}

func TestCheck(t *testing.T) {
	fs := testFs(t)
	sums, err := execute(t, fs, "", "sum", "/data/abc", "/data/hello")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/sums.txt", []byte(sums), 0o600))

	out, err := execute(t, fs, "", "check", "/sums.txt")
	require.NoError(t, err)
	require.Equal(t, "/data/abc: OK\n/data/hello: OK\n", out)

	failedBefore := testutil.ToFloat64(checkResults.WithLabelValues("failed"))
	require.NoError(t, afero.WriteFile(fs, "/data/hello", []byte("hello!"), 0o600))
	out, err = execute(t, fs, "", "check", "/sums.txt")
	require.ErrorIs(t, err, ErrChecksumMismatch)
	require.Equal(t, "/data/abc: OK\n/data/hello: FAILED\n", out)
	require.Equal(t, failedBefore+1, testutil.ToFloat64(checkResults.WithLabelValues("failed")))
}

func TestCheckLongOutputAndEncoding(t *testing.T) {
	fs := testFs(t)
	sums, err := execute(t, fs, "", "sum", "-l", "48", "--encoding", "base58btc", "/data/hello")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/sums.txt", []byte("\n"+sums+"\n"), 0o600))

	out, err := execute(t, fs, "", "check", "--encoding", "base58btc", "/sums.txt")
	require.NoError(t, err)
	require.Equal(t, "/data/hello: OK\n", out)

	// hex digests are rejected when another encoding is expected
	require.NoError(t, afero.WriteFile(fs, "/hex.txt", []byte(helloHex+"  /data/hello\n"), 0o600))
	_, err = execute(t, fs, "", "check", "--encoding", "base58btc", "/hex.txt")
	require.ErrorIs(t, err, ErrMalformedLine)
}

func TestCheckMalformed(t *testing.T) {
	fs := testFs(t)
	require.NoError(t, afero.WriteFile(fs, "/bad.txt", []byte(abcHex+" /data/abc\n"), 0o600))
	_, err := execute(t, fs, "", "check", "/bad.txt")
	require.ErrorIs(t, err, ErrMalformedLine)

	_, err = execute(t, fs, "", "check")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	cmdp.Version = "v1.2.3"
	cmdp.Commit = "abcdef"
	t.Cleanup(func() {
		cmdp.Version = ""
		cmdp.Commit = ""
	})
	out, err := execute(t, afero.NewMemMapFs(), "", "version")
	require.NoError(t, err)
	require.Equal(t, "v1.2.3+abcdef\n", out)
}

func TestMetricsPush(t *testing.T) {
	var pushes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/metrics/job/xofhash/instance/") {
			pushes.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := execute(t, testFs(t), "", "sum", "--metrics-push", srv.URL, "/data/abc")
	require.NoError(t, err)
	require.EqualValues(t, 1, pushes.Load())
}

func TestMetricsServer(t *testing.T) {
	out, err := execute(t, testFs(t), "", "sum", "--metrics", "--metrics-addr", "127.0.0.1:0", "--no-names", "/data/abc")
	require.NoError(t, err)
	require.Equal(t, abcHex+"\n", out)

	_, err = execute(t, testFs(t), "", "sum", "--metrics", "--metrics-addr", "bad address", "/data/abc")
	require.ErrorContains(t, err, "could not start metrics server")
}
