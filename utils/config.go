package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Animator names accepted on the command line and in config files
const (
	AnimatorInteractive = "interactive"
	AnimatorContinuous  = "continuous"

	// aliases kept from the original command line
	animatorCurses   = "curses"
	animatorPrintAll = "print_all"
)

// ErrUsage marks invalid or conflicting options
var ErrUsage = errors.New("usage error")

// Config holds the run options
type Config struct {
	LiveGlyph   string        `json:"live_glyph"`
	DeadGlyph   string        `json:"dead_glyph"`
	Separator   string        `json:"separator"`
	Animator    string        `json:"animator"`
	StepToPrint int           `json:"step_to_print"`
	FrameRate   time.Duration `json:"frame_rate"`
	PollTimeout time.Duration `json:"poll_timeout"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		LiveGlyph:   "1",
		DeadGlyph:   "0",
		Separator:   " ",
		FrameRate:   time.Second,
		PollTimeout: time.Second,
	}
}

// LoadConfig loads configuration from a JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// AnimatorMode resolves the configured animator name, defaulting to interactive.
// Call Validate first; unknown names resolve to "".
func (c Config) AnimatorMode() string {
	switch c.Animator {
	case "", AnimatorInteractive, animatorCurses:
		return AnimatorInteractive
	case AnimatorContinuous, animatorPrintAll:
		return AnimatorContinuous
	default:
		return ""
	}
}

// SingleFrame reports whether a fixed generation was requested
func (c Config) SingleFrame() bool {
	return c.StepToPrint != 0
}

// Validate rejects conflicting or out-of-range options before any board is loaded.
func (c Config) Validate() error {
	if c.SingleFrame() && c.Animator != "" {
		return errors.Wrap(ErrUsage, "cannot combine a step to print with an animator")
	}
	if c.StepToPrint < 0 {
		return errors.Wrapf(ErrUsage, "step to print must be at least 1, got %d", c.StepToPrint)
	}
	if c.AnimatorMode() == "" {
		return errors.Wrapf(ErrUsage, "invalid animator %q, must be one of %s, %s, %s, %s",
			c.Animator, AnimatorInteractive, animatorCurses, AnimatorContinuous, animatorPrintAll)
	}
	if c.LiveGlyph == "" || c.DeadGlyph == "" {
		return errors.Wrap(ErrUsage, "live and dead glyphs must not be empty")
	}
	if c.FrameRate <= 0 || c.PollTimeout <= 0 {
		return errors.Wrap(ErrUsage, "frame rate and poll timeout must be positive")
	}
	return nil
}
