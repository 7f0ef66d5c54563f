// Package animator drives a board through generations and emits the rendered frames.
package animator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Animator takes ownership of a board for the duration of Animate
type Animator interface {
	Animate(ctx context.Context, b *model.Board) error
}

var (
	_ Animator = (*Continuous)(nil)
	_ Animator = (*Interactive)(nil)
	_ Animator = (*SingleFrame)(nil)
)

// Continuous prints every generation, blank-line separated, pausing between frames.
// It only stops when ctx is cancelled.
type Continuous struct {
	renderer *model.Renderer
	out      io.Writer
	interval time.Duration
}

func NewContinuous(renderer *model.Renderer, out io.Writer, interval time.Duration) *Continuous {
	return &Continuous{renderer: renderer, out: out, interval: interval}
}

func (c *Continuous) Animate(ctx context.Context, b *model.Board) error {
	for iteration := 1; ; iteration++ {
		if _, err := fmt.Fprintf(c.out, "Iteration %d\n%s\n\n", iteration, c.renderer.Render(b)); err != nil {
			return errors.Wrapf(err, "[Continuous] failed to write iteration %d", iteration)
		}
		b.Step()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.interval):
		}
	}
}

// SingleFrame advances to one generation and prints it once.
// Generation 1 is the loaded board.
type SingleFrame struct {
	renderer   *model.Renderer
	out        io.Writer
	generation int
}

func NewSingleFrame(renderer *model.Renderer, out io.Writer, generation int) (*SingleFrame, error) {
	if generation < 1 {
		return nil, errors.Wrapf(utils.ErrUsage, "generation must be at least 1, got %d", generation)
	}
	return &SingleFrame{renderer: renderer, out: out, generation: generation}, nil
}

func (s *SingleFrame) Animate(_ context.Context, b *model.Board) error {
	for i := 1; i < s.generation; i++ {
		b.Step()
	}
	if _, err := fmt.Fprintln(s.out, s.renderer.Render(b)); err != nil {
		return errors.Wrap(err, "[SingleFrame] failed to write frame")
	}
	return nil
}
