package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/animator"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const usageText = `Usage: go-life [options] [extra boards...]

If --filename is not given, type the board on standard input. Boards look like:

0 0
0 1

where 0 is a dead cell and 1 a live cell. Hit return twice when done.

Extra board files after the options are only accepted with --step-to-print; each
one is printed at that generation.

Options:
`

// Runner loads a board and hands it to an animator
type Runner struct {
	loader   *model.Loader
	animator animator.Animator
}

func NewRunner(loader *model.Loader, a animator.Animator) *Runner {
	return &Runner{loader: loader, animator: a}
}

// Run loads the board and animates it
func (r *Runner) Run(ctx context.Context) error {
	board, err := r.loader.Load()
	if err != nil {
		return err
	}
	return r.animator.Animate(ctx, board)
}

// options is the parsed command line
type options struct {
	config   utils.Config
	filename string
	extra    []string
}

// parseOptions reads flags, layering them over the config file when one is given.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	var (
		opts   options
		fs     = flag.NewFlagSet("go-life", flag.ContinueOnError)
		config = utils.DefaultConfig()
	)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "JSON config file; flags override its values")
	fs.StringVar(&opts.filename, "filename", "", "file describing the initial board")
	fs.StringVar(&config.Animator, "animator", "", `"interactive" (alias "curses") redraws in place, q quits; "continuous" (alias "print_all") prints every generation until killed`)
	fs.IntVar(&config.StepToPrint, "step-to-print", 0, "print only this generation (the initial board is 1); conflicts with --animator")
	fs.StringVar(&config.LiveGlyph, "output-live-cell-character", config.LiveGlyph, "glyph for live cells")
	fs.StringVar(&config.DeadGlyph, "output-dead-cell-character", config.DeadGlyph, "glyph for dead cells")
	fs.StringVar(&config.Separator, "separator", config.Separator, "text between cells in a row; may be empty")
	fs.DurationVar(&config.FrameRate, "frame-rate", config.FrameRate, "pause between continuous frames")
	fs.DurationVar(&config.PollTimeout, "poll-timeout", config.PollTimeout, "interactive keypress timeout before the next generation")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}
		return opts, errors.Wrap(utils.ErrUsage, err.Error())
	}

	opts.config = config
	if *configPath != "" {
		fileConfig, err := utils.LoadConfig(*configPath)
		if err != nil {
			return opts, err
		}
		opts.config = mergeFlags(fs, fileConfig, config)
	}
	opts.extra = fs.Args()

	if err := opts.config.Validate(); err != nil {
		return opts, err
	}
	if len(opts.extra) > 0 && !opts.config.SingleFrame() {
		return opts, errors.Wrap(utils.ErrUsage, "extra board files require --step-to-print")
	}
	return opts, nil
}

// mergeFlags copies the explicitly set flags onto the file config
func mergeFlags(fs *flag.FlagSet, base, flags utils.Config) utils.Config {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "animator":
			base.Animator = flags.Animator
		case "step-to-print":
			base.StepToPrint = flags.StepToPrint
		case "output-live-cell-character":
			base.LiveGlyph = flags.LiveGlyph
		case "output-dead-cell-character":
			base.DeadGlyph = flags.DeadGlyph
		case "separator":
			base.Separator = flags.Separator
		case "frame-rate":
			base.FrameRate = flags.FrameRate
		case "poll-timeout":
			base.PollTimeout = flags.PollTimeout
		}
	})
	return base
}

// newLoader reads from the named file, or prompts on stdin when there is none
func newLoader(filename string, stdin io.Reader, stderr io.Writer) *model.Loader {
	if filename != "" {
		return model.NewLoader(model.FileSource(filename))
	}
	fmt.Fprintln(stderr, "Type the board (0 dead, 1 live), then an empty line:")
	return model.NewLoader(model.PromptSource{In: stdin})
}

// newRenderer builds the frame renderer from the glyph options
func newRenderer(config utils.Config) *model.Renderer {
	return model.NewRenderer(config.LiveGlyph, config.DeadGlyph).WithSeparator(config.Separator)
}

// newAnimator picks the animator for a validated config
func newAnimator(config utils.Config, stdout io.Writer) (animator.Animator, error) {
	renderer := newRenderer(config)

	if config.SingleFrame() {
		return animator.NewSingleFrame(renderer, stdout, config.StepToPrint)
	}

	switch config.AnimatorMode() {
	case utils.AnimatorContinuous:
		return animator.NewContinuous(renderer, stdout, config.FrameRate), nil
	case utils.AnimatorInteractive:
		return animator.NewInteractive(renderer, config.PollTimeout, nil, nil), nil
	default:
		return nil, errors.Wrapf(utils.ErrUsage, "invalid animator %q", config.Animator)
	}
}

// renderBatch prints every board file at the configured generation. Boards are
// loaded and stepped concurrently, one goroutine per board, and printed in order.
func renderBatch(ctx context.Context, paths []string, config utils.Config, out io.Writer) error {
	var (
		renderer = newRenderer(config)
		frames   = make([]bytes.Buffer, len(paths))
	)

	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := animator.NewSingleFrame(renderer, &frames[i], config.StepToPrint)
			if err != nil {
				return err
			}
			if err := NewRunner(model.NewLoader(model.FileSource(path)), a).Run(ctx); err != nil {
				return errors.Wrapf(err, "[renderBatch] %s", path)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if _, err := fmt.Fprintf(out, "==> %s <==\n%s", path, frames[i].String()); err != nil {
			return errors.Wrap(err, "[renderBatch] failed to write frames")
		}
	}
	return nil
}
