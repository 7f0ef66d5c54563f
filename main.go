package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	// Ctrl+C ends the continuous animation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one load-and-animate pipeline and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return report(stderr, err)
	}

	if len(opts.extra) > 0 {
		paths := opts.extra
		if opts.filename != "" {
			paths = append([]string{opts.filename}, paths...)
		}
		return report(stderr, renderBatch(ctx, paths, opts.config, stdout))
	}

	a, err := newAnimator(opts.config, stdout)
	if err != nil {
		return report(stderr, err)
	}
	loader := newLoader(opts.filename, stdin, stderr)

	return report(stderr, NewRunner(loader, a).Run(ctx))
}

// report prints err and maps it to an exit code: 2 for usage errors, 1 otherwise
func report(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	if errors.Is(err, utils.ErrUsage) {
		return 2
	}
	return 1
}
