package animator

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m lifeModel, msg tea.Msg) (lifeModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(lifeModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return lm, cmd
}

func TestInteractiveQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyPress('q'), {Type: tea.KeyCtrlC}} {
		m := newLifeModel(blinker(t), model.NewRenderer("", ""), time.Second)
		m, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", msg)
		}
		if m.iteration != 1 {
			t.Fatalf("%s: quitting should not step the board", msg)
		}
		if m.View() != "" {
			t.Fatalf("%s: expected an empty view after quitting", msg)
		}
	}
}

func TestInteractiveTickSteps(t *testing.T) {
	b := blinker(t)
	m := newLifeModel(b, model.NewRenderer("", ""), time.Second)

	m, cmd := update(t, m, tickMsg{id: 0})
	if cmd == nil {
		t.Fatalf("expected the next tick to be scheduled")
	}
	if m.iteration != 2 {
		t.Fatalf("iteration = %d, want 2", m.iteration)
	}
	if !b.IsAlive(0, 1) || b.IsAlive(1, 0) {
		t.Fatalf("board was not stepped: %v", b.LiveCells())
	}
	if !strings.Contains(m.View(), "0 0 0\n1 1 1\n0 0 0") {
		t.Fatalf("view does not show the stepped board:\n%s", m.View())
	}
}

func TestInteractiveIgnoresStaleTicks(t *testing.T) {
	m := newLifeModel(blinker(t), model.NewRenderer("", ""), time.Second)

	m, _ = update(t, m, keyPress('x'))
	if m.iteration != 2 {
		t.Fatalf("a keypress should step the board, iteration = %d", m.iteration)
	}

	m, cmd := update(t, m, tickMsg{id: 0})
	if cmd != nil || m.iteration != 2 {
		t.Fatalf("a tick scheduled before the keypress should be dropped")
	}

	m, _ = update(t, m, tickMsg{id: 1})
	if m.iteration != 3 {
		t.Fatalf("the current tick should step the board, iteration = %d", m.iteration)
	}
}

func TestInteractiveViewHeader(t *testing.T) {
	m := newLifeModel(blinker(t), model.NewRenderer("#", "."), time.Second)
	view := m.View()
	for _, want := range []string{"Game Of Life", "Iteration 1", "Living: 3", "Status: Active", "Runtime: ", ". # ."} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q:\n%s", want, view)
		}
	}
}

func TestInteractiveProgramQuits(t *testing.T) {
	var out bytes.Buffer
	a := NewInteractive(model.NewRenderer("", ""), time.Hour, strings.NewReader("q"), &out)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Animate(ctx, blinker(t)); err != nil {
		t.Fatalf("Animate: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatalf("program only stopped because the context expired")
	}
}

func TestInteractiveStatus(t *testing.T) {
	tests := []struct {
		name string
		live []model.Cell
		want string
	}{
		{"block is stagnant", []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, "Status: Stagnant"},
		{"lone cell goes extinct", []model.Cell{{X: 1, Y: 1}}, "Status: Extinct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := model.NewBoard(3, 3, tt.live)
			if err != nil {
				t.Fatal(err)
			}
			m := newLifeModel(b, model.NewRenderer("", ""), time.Second)
			m, _ = update(t, m, tickMsg{id: 0})
			if view := m.View(); !strings.Contains(view, tt.want) {
				t.Fatalf("view is missing %q:\n%s", tt.want, view)
			}
		})
	}
}

func TestInteractiveStopsOnCancel(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	a := NewInteractive(model.NewRenderer("", ""), 50*time.Millisecond, in, io.Discard)
	if err := a.Animate(ctx, blinker(t)); err != nil {
		t.Fatalf("Animate: %v", err)
	}
	if ctx.Err() == nil {
		t.Fatalf("program returned before the context was cancelled")
	}
}

func TestExitError(t *testing.T) {
	live := context.Background()
	done, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		err     error
		wantErr bool
	}{
		{"clean quit", live, nil, false},
		{"interrupt", live, tea.ErrInterrupted, false},
		{"killed after cancel", done, tea.ErrProgramKilled, false},
		{"killed without cancel", live, tea.ErrProgramKilled, true},
		{"other failure", live, errors.New("tty gone"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := exitError(tt.ctx, tt.err); (err != nil) != tt.wantErr {
				t.Fatalf("exitError() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
