// xofhash prints and verifies BLAKE3 digests with extendable, seekable output.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spacemeshos/go-xofhash/cmd"
	"github.com/spacemeshos/go-xofhash/cmd/xofhash"
)

var (
	version string
	commit  string
	branch  string
)

func main() { // run the app
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := xofhash.New().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
