// Package greet implements the terminal greeter: a single display session
// that renders the greeting at a fixed coordinate, repeats it in up to
// thirteen color combinations when the terminal can represent them, holds
// the screen, and restores the terminal on release.
package greet

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgreet/constants"
)

// Sentinel errors
var (
	ErrInitialization = errors.New("terminal backend could not be initialised")
	ErrNoSession      = errors.New("no active display session")
	ErrSessionActive  = errors.New("display session already active")
)

// Capability is the color capability snapshot taken when the session starts.
type Capability struct {
	Color  bool  // terminal reports color and NO_COLOR is unset
	Colors int   // colors the terminal can represent
	Pairs  int64 // representable fg/bg combinations (Colors squared)
}

// Greeter owns at most one terminal display session at a time. All methods
// except Interrupt must be called from the goroutine that called Start.
type Greeter struct {
	screen   tcell.Screen
	provided bool
	active   bool
	cap      Capability

	interrupt     chan struct{}
	interruptOnce sync.Once
}

// New returns a greeter that acquires the default terminal screen on Start.
func New() *Greeter {
	return &Greeter{
		interrupt: make(chan struct{}),
	}
}

// NewWithScreen returns a greeter bound to a caller-provided, uninitialized
// screen. Tests use this with tcell's simulation screen.
func NewWithScreen(screen tcell.Screen) *Greeter {
	return &Greeter{
		screen:    screen,
		provided:  true,
		interrupt: make(chan struct{}),
	}
}

// Start acquires the display session and snapshots the terminal's color
// capability. Failures wrap ErrInitialization.
func (g *Greeter) Start() error {
	if g.active {
		return ErrSessionActive
	}

	if g.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInitialization, err)
		}
		g.screen = screen
	}

	if err := g.screen.Init(); err != nil {
		if !g.provided {
			g.screen = nil
		}
		return fmt.Errorf("%w: %v", ErrInitialization, err)
	}

	g.cap = queryCapability(g.screen)
	g.active = true
	return nil
}

// queryCapability reads the color state of an initialized screen. The
// NO_COLOR convention overrides whatever the terminal reports.
func queryCapability(screen tcell.Screen) Capability {
	cap := Capability{Colors: screen.Colors()}
	if cap.Colors > 0 {
		cap.Pairs = int64(cap.Colors) * int64(cap.Colors)
	}
	cap.Color = cap.Colors > 0 && os.Getenv("NO_COLOR") == ""
	return cap
}

// Capability returns the snapshot taken at Start. Zero value before Start.
func (g *Greeter) Capability() Capability {
	return g.cap
}

// Render writes message at (row, col) in the default style. Cells past the
// screen edge are clipped silently.
func (g *Greeter) Render(message string, row, col int) error {
	if !g.active {
		return ErrNoSession
	}
	drawText(g.screen, col, row, message, tcell.StyleDefault)
	return nil
}

// RenderColorVariants draws message once per color pair at rows
// baseRow+1..baseRow+13, same column, and reports how many variant rows were
// drawn. When the terminal cannot represent at least
// constants.MinColorCombinations fg/bg combinations the step is skipped
// entirely: no rows, no error.
func (g *Greeter) RenderColorVariants(message string, baseRow, col int) (int, error) {
	if !g.active {
		return 0, ErrNoSession
	}
	if !g.cap.Color || g.cap.Pairs < constants.MinColorCombinations {
		return 0, nil
	}

	for i, pair := range colorPairs {
		drawText(g.screen, col, baseRow+1+i, message, pair.Style())
	}
	return len(colorPairs), nil
}

// Present flushes pending drawing to the terminal, then holds the display
// for d. It returns true when the full hold elapsed and false when the hold
// was released early by Interrupt.
func (g *Greeter) Present(d time.Duration) (bool, error) {
	if !g.active {
		return false, ErrNoSession
	}

	g.screen.Show()

	if d <= 0 {
		return true, nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true, nil
	case <-g.interrupt:
		return false, nil
	}
}

// Interrupt releases an in-progress Present early. Safe to call from any
// goroutine and safe to call more than once.
func (g *Greeter) Interrupt() {
	g.interruptOnce.Do(func() {
		close(g.interrupt)
	})
}

// Stop releases the display session and restores the terminal. Safe to call
// multiple times; extra calls are no-ops.
func (g *Greeter) Stop() {
	if !g.active {
		return
	}
	g.screen.Fini()
	g.active = false
	if !g.provided {
		g.screen = nil
	}
}

// drawText writes text cell by cell starting at (x, y).
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
