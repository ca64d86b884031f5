package xofhash

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/go-xofhash/config"
	"github.com/spacemeshos/go-xofhash/hash"
)

var (
	// ErrChecksumMismatch is returned when at least one line failed to verify.
	ErrChecksumMismatch = errors.New("computed checksums did NOT match")
	// ErrMalformedLine is returned for lines that are not "DIGEST  NAME".
	ErrMalformedLine = errors.New("malformed checksum line")
)

func (a *app) checkCmd(def *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "check FILE",
		Short: "Verify \"DIGEST  NAME\" lines as printed by sum",
		Args:  cobra.ExactArgs(1),
	}
	addModeFlags(c)
	c.Flags().String("key", "", "hex encoded 32 byte key for keyed hashing")
	c.Flags().String("key-file", "", "file holding a 32 byte key, raw or hex")
	c.Flags().String("encoding", def.HASH.Encoding,
		fmt.Sprintf("encoding of the listed digests. options %v", config.Encodings))
	c.Flags().IntP("jobs", "j", def.HASH.Jobs, "number of files hashed in parallel")
	c.RunE = a.run(a.runCheck)
	return c
}

func (a *app) runCheck(c *cobra.Command, args []string) error {
	hs, err := a.hashing(c.Flags())
	if err != nil {
		return err
	}
	offset, _ := c.Flags().GetUint64("offset")

	f, err := a.fs.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		jobs []job
		want [][]byte
	)
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		digest, name, ok := strings.Cut(text, "  ")
		if !ok || name == "" {
			return fmt.Errorf("%w: %s:%d", ErrMalformedLine, args[0], line)
		}
		raw, err := decode(a.conf.HASH.Encoding, digest)
		if err != nil {
			return fmt.Errorf("%w: %s:%d: %w", ErrMalformedLine, args[0], line, err)
		}
		jobs = append(jobs, job{name: name, offset: offset, length: len(raw)})
		want = append(want, raw)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	got, err := a.hashAll(c.Context(), c.Name(), hs, jobs, c.InOrStdin())
	if err != nil {
		return err
	}
	failed := 0
	for i, j := range jobs {
		result := "OK"
		if !hash.Equal(want[i], got[i]) {
			result = "FAILED"
			failed++
		}
		checkResults.WithLabelValues(strings.ToLower(result)).Inc()
		fmt.Fprintf(c.OutOrStdout(), "%s: %s\n", j.name, result)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrChecksumMismatch, failed, len(jobs))
	}
	return nil
}
