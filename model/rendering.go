package model

import "strings"

const (
	DefaultLiveGlyph = "1"
	DefaultDeadGlyph = "0"

	defaultSeparator = " "
)

// Renderer draws a board as rows of glyphs
type Renderer struct {
	live      string
	dead      string
	separator string
}

// NewRenderer creates a renderer for the given glyphs. Empty glyphs fall back to "1" and "0".
func NewRenderer(live, dead string) *Renderer {
	if live == "" {
		live = DefaultLiveGlyph
	}
	if dead == "" {
		dead = DefaultDeadGlyph
	}
	return &Renderer{live: live, dead: dead, separator: defaultSeparator}
}

// WithSeparator returns a copy of the renderer that joins glyphs with sep
func (r *Renderer) WithSeparator(sep string) *Renderer {
	cp := *r
	cp.separator = sep
	return &cp
}

// Render returns one line per row, top row first, with no trailing newline.
func (r *Renderer) Render(b *Board) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width(); x++ {
			if x > 0 {
				sb.WriteString(r.separator)
			}
			if b.IsAlive(x, y) {
				sb.WriteString(r.live)
			} else {
				sb.WriteString(r.dead)
			}
		}
	}
	return sb.String()
}
