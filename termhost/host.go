package termhost

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/domtree"
)

// Host is a minimal tcell terminal UI driving a keyscope.Engine: two
// focusable panes (list and status, switched with Tab), a status line,
// a scrolling log of keys the engine suppressed and later replayed
// unconsumed, and a help
// overlay built from whatever Handles the caller registers for
// display via AddHelpSource.
type Host struct {
	screen tcell.Screen

	root  *domtree.Node
	panes map[string]*domtree.Node

	mu             sync.Mutex
	focused        *domtree.Node
	fallthroughLog []string
	helpHandles    []keyscope.Handle
}

// New creates a Host and its underlying tcell screen, but does not
// initialize it — call Init before Run.
func New() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	root := domtree.New("body").WithID("root")
	list := root.AppendChild("pane").WithID("list").WithClass("pane")
	status := root.AppendChild("pane").WithID("status").WithClass("pane")

	return &Host{
		screen:  screen,
		root:    root,
		panes:   map[string]*domtree.Node{"list": list, "status": status},
		focused: list,
	}, nil
}

// Init brings up the terminal screen.
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return err
	}
	h.screen.EnableMouse()
	return nil
}

// Shutdown restores the terminal.
func (h *Host) Shutdown() {
	h.screen.Fini()
}

// Pane returns the named focusable pane node ("list" or "status"), or
// nil if unknown — for building selector-scoped bindings, e.g.
// keyscope.Binding{Selector: "#list", ...}.
func (h *Host) Pane(name string) *domtree.Node {
	return h.panes[name]
}

// FocusPane switches which pane key events target.
func (h *Host) FocusPane(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n, ok := h.panes[name]; ok {
		h.focused = n
	}
}

// AddHelpSource registers a Handle whose bound sequences and
// descriptions should appear in the on-screen help overlay.
func (h *Host) AddHelpSource(handle keyscope.Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.helpHandles = append(h.helpHandles, handle)
}

// Deliver is the keyscope.WithDeliver callback: it receives a clone of
// every event that was suppressed during a pending window and later
// released unconsumed (the sequence stopped matching, or the window
// expired with no deferred exact match), and appends it to the
// fallthrough log so the demo can show what "not a shortcut" looks
// like. Key presses the engine never suppressed do not reach it.
func (h *Host) Deliver(ev keyscope.KeyEvent) {
	e, ok := ev.(*Event)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if r, isRune := e.Rune(); isRune {
		h.fallthroughLog = append(h.fallthroughLog, string(r))
	} else if name := e.KeyName(); name != "" {
		h.fallthroughLog = append(h.fallthroughLog, "<"+name+">")
	}
}

// Run pumps tcell events into engine.Process until ctx is cancelled or
// Ctrl-C is pressed.
func (h *Host) Run(ctx context.Context, engine *keyscope.Engine) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.render(engine)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch te := ev.(type) {
			case *tcell.EventKey:
				if te.Key() == tcell.KeyCtrlC {
					return nil
				}
				h.mu.Lock()
				target := h.focused
				h.mu.Unlock()
				kev := NewEvent(te, target)
				engine.Process(kev)
				if te.Key() == tcell.KeyTab && !kev.Consumed() {
					h.mu.Lock()
					if h.focused == h.panes["list"] {
						h.focused = h.panes["status"]
					} else {
						h.focused = h.panes["list"]
					}
					h.mu.Unlock()
				}
				h.render(engine)
			case *tcell.EventResize:
				h.screen.Sync()
				h.render(engine)
			}
		}
	}
}

func (h *Host) render(engine *keyscope.Engine) {
	h.screen.Clear()
	_, height := h.screen.Size()

	h.mu.Lock()
	log := append([]string(nil), h.fallthroughLog...)
	focused := h.focused
	h.mu.Unlock()

	drawText(h.screen, 0, 0, fmt.Sprintf("focused pane: %s", focused.ID))
	drawText(h.screen, 0, 1, "fallthrough: "+strings.Join(lastN(log, 20), ""))

	if m := engine.Metrics(); m != nil {
		snap := m.Snapshot()
		drawText(h.screen, 0, 2, fmt.Sprintf(
			"dispatches=%d none=%d partial=%d exact=%d deferred=%d",
			snap.DispatchCount, snap.NoneCount, snap.PartialCount, snap.ExactCount, snap.DeferredCount))
	}

	y := 4
	for _, line := range h.helpLines() {
		if y >= height {
			break
		}
		drawText(h.screen, 0, y, line)
		y++
	}

	h.screen.Show()
}

func (h *Host) helpLines() []string {
	h.mu.Lock()
	handles := append([]keyscope.Handle(nil), h.helpHandles...)
	h.mu.Unlock()

	var lines []string
	for _, handle := range handles {
		for _, b := range handle.Bindings() {
			if b.Description == "" {
				continue
			}
			lines = append(lines, strings.Join(b.Sequence, " ")+"  "+b.Description)
		}
	}
	return lines
}

func drawText(screen tcell.Screen, x, y int, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func lastN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
