package xofhash

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	cmdp "github.com/spacemeshos/go-xofhash/cmd"
	"github.com/spacemeshos/go-xofhash/config"
	"github.com/spacemeshos/go-xofhash/filesystem"
)

func (a *app) sumCmd(def *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Print BLAKE3 output of files, or stdin when no file or - is given",
	}
	cmdp.AddHashFlags(c.Flags(), def)
	addModeFlags(c)
	c.Flags().String("key", "", "hex encoded 32 byte key for keyed hashing")
	c.Flags().String("key-file", "", "file holding a 32 byte key, raw or hex")
	c.Flags().Bool("no-names", false, "print digests only")
	c.Flags().StringP("output", "o", "", "write the result to this file instead of stdout")
	c.RunE = a.run(a.runSum)
	return c
}

// addModeFlags adds the flags shared by sum and check.
func addModeFlags(c *cobra.Command) {
	c.Flags().Uint64("offset", 0, "output position to start reading at")
	c.Flags().String("derive-key", "", "derive keys under this context string")
}

func (a *app) runSum(c *cobra.Command, args []string) error {
	hs, err := a.hashing(c.Flags())
	if err != nil {
		return err
	}
	offset, _ := c.Flags().GetUint64("offset")
	noNames, _ := c.Flags().GetBool("no-names")
	output, _ := c.Flags().GetString("output")

	if len(args) == 0 {
		args = []string{stdinName}
	}
	jobs := make([]job, len(args))
	for i, name := range args {
		jobs[i] = job{name: name, offset: offset, length: a.conf.HASH.Length}
	}
	digests, err := a.hashAll(c.Context(), c.Name(), hs, jobs, c.InOrStdin())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, digest := range digests {
		s, err := encode(a.conf.HASH.Encoding, digest)
		if err != nil {
			return err
		}
		if noNames {
			fmt.Fprintln(&buf, s)
		} else {
			fmt.Fprintf(&buf, "%s  %s\n", s, jobs[i].name)
		}
	}

	if output == "" {
		_, err = c.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := atomic.WriteFile(filesystem.GetCanonicalPath(output), &buf); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
