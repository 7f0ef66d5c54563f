package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	liveToken = "1"
	deadToken = "0"
)

// Source supplies the raw text of a board
type Source interface {
	Read() (string, error)
}

// FileSource reads a board from a file on disk
type FileSource string

func (f FileSource) Read() (string, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return "", errors.Wrapf(err, "[FileSource] failed to read file: %+v", string(f))
	}
	return string(data), nil
}

// StringSource serves a fixed board text
type StringSource string

func (s StringSource) Read() (string, error) {
	return string(s), nil
}

// PromptSource collects typed lines until the first blank line or end of input.
type PromptSource struct {
	In io.Reader
}

func (p PromptSource) Read() (string, error) {
	var (
		lines   []string
		scanner = bufio.NewScanner(p.In)
	)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, "[PromptSource] failed to read input")
	}
	return strings.Join(lines, "\n"), nil
}

// Loader builds boards from a Source
type Loader struct {
	src Source
}

func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load reads the source and parses it into a Board.
func (l *Loader) Load() (*Board, error) {
	text, err := l.src.Read()
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// Parse turns rows of whitespace-separated 0/1 tokens into a Board. Blank lines are
// ignored; every remaining row must have as many tokens as the first.
func Parse(text string) (*Board, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	if len(rows) == 0 {
		return nil, invalidBoardf("no rows in input")
	}

	var (
		width  = len(rows[0])
		height = len(rows)
		live   []Cell
	)
	for y, row := range rows {
		if len(row) != width {
			return nil, invalidBoardf("row %d has %d cells, expected %d", y+1, len(row), width)
		}
		for x, token := range row {
			switch token {
			case liveToken:
				live = append(live, Cell{X: x, Y: y})
			case deadToken:
			default:
				return nil, invalidBoardf("row %d column %d: unrecognized cell %q", y+1, x+1, token)
			}
		}
	}
	return NewBoard(width, height, live)
}
