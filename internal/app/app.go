// Package app drives the interactive demo: it turns tcell mouse and key
// events into session operations, runs searches off the event loop and
// redraws the grid after every search step.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/internal/session"
	"github.com/katalvlaran/astargrid/internal/view"
)

// DefaultDelay is the pause after each search step.
const DefaultDelay = 5 * time.Millisecond

// Option configures an App.
type Option func(*App)

// WithDelay sets the pause after each search step. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(a *App) {
		if d < 0 {
			d = 0
		}
		a.delay = d
	}
}

// WithLogger routes application logs to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// searchDone is posted back to the event loop when a search goroutine ends.
type searchDone struct {
	res *astar.Result
	err error
}

// App ties a session to a screen.
type App struct {
	screen tcell.Screen
	view   *view.View
	sess   *session.Session
	delay  time.Duration
	log    logrus.FieldLogger

	mu     sync.Mutex
	cancel context.CancelFunc // non-nil while a search runs
	wg     sync.WaitGroup

	// drawMu serializes screen writes and status updates between the event
	// loop and the search goroutine. Cell states are never read under it by
	// the event loop while a search runs.
	drawMu sync.Mutex
}

// New creates an App. The screen must already be initialized.
func New(screen tcell.Screen, sess *session.Session, opts ...Option) *App {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	a := &App{
		screen: screen,
		view:   view.New(screen, nil),
		sess:   sess,
		delay:  DefaultDelay,
		log:    discard,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.view.SetStatus(a.idleStatus())
	return a
}

// Run draws the first frame and processes events until quit is requested or
// the screen is finalized. Any running search is cancelled and awaited
// before Run returns.
func (a *App) Run() error {
	a.screen.EnableMouse()
	if !a.view.Fits(a.sess.Grid()) {
		a.log.WithField("size", a.sess.Grid().Size()).Warn("grid larger than terminal")
	}
	a.refresh(false)
	defer a.Stop()

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.Handle(ev) {
			return nil
		}
	}
}

// Handle processes one event and reports whether the app should quit.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.refresh(true)
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventInterrupt:
		if done, ok := ev.Data().(searchDone); ok {
			a.finish(done)
		}
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		a.cancelSearch()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		a.StartSearch()
	case 'c', 'C':
		if err := a.sess.Reset(); err != nil {
			a.report(err)
			return false
		}
		a.show(a.idleStatus())
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	if btn&(tcell.Button1|tcell.Button2) == 0 {
		return
	}
	x, y := ev.Position()
	p, ok := a.view.CellAt(x, y, a.sess.Grid())
	if !ok {
		return
	}

	var err error
	if btn&tcell.Button1 != 0 {
		_, err = a.sess.Paint(p)
	} else {
		err = a.sess.Erase(p)
	}
	if err != nil {
		a.report(err)
		return
	}
	a.show(a.idleStatus())
}

// StartSearch launches a search on its own goroutine. Completion is posted
// back to the event loop as an interrupt event.
func (a *App) StartSearch() {
	if !a.sess.Ready() {
		a.report(session.ErrNotReady)
		return
	}
	a.mu.Lock()
	if a.cancel != nil {
		a.mu.Unlock()
		a.report(session.ErrBusy)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	a.show("searching...")
	go func() {
		defer a.wg.Done()
		res, err := a.Search(ctx)

		a.mu.Lock()
		a.cancel = nil
		a.mu.Unlock()
		cancel()

		if perr := a.screen.PostEvent(tcell.NewEventInterrupt(searchDone{res: res, err: err})); perr != nil {
			a.log.WithError(perr).Warn("could not post search result")
		}
	}()
}

// Search runs one search synchronously, redrawing after every step.
func (a *App) Search(ctx context.Context) (*astar.Result, error) {
	return a.sess.Run(ctx, func() {
		a.frame()
		if a.delay <= 0 {
			return
		}
		t := time.NewTimer(a.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	})
}

func (a *App) cancelSearch() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
	}
}

// Stop cancels any running search and waits for it to return.
func (a *App) Stop() {
	a.cancelSearch()
	a.wg.Wait()
}

// Wait blocks until no search goroutine is running.
func (a *App) Wait() { a.wg.Wait() }

func (a *App) finish(done searchDone) {
	switch {
	case errors.Is(done.err, context.Canceled):
		a.show("search stopped")
	case done.err != nil:
		a.report(done.err)
	case done.res.Found:
		a.show(fmt.Sprintf("path found: %d steps, %d cells expanded", done.res.Cost, done.res.Expanded))
	default:
		a.show(fmt.Sprintf("no path: %d cells expanded", done.res.Expanded))
	}
}

func (a *App) report(err error) {
	a.log.WithError(err).Debug("action rejected")
	a.show(err.Error())
}

func (a *App) idleStatus() string {
	switch {
	case a.sess.Start() == nil:
		return "place the start"
	case a.sess.End() == nil:
		return "place the end"
	default:
		return "ready: press space to search"
	}
}

// Status returns the current status line text.
func (a *App) Status() string {
	a.drawMu.Lock()
	defer a.drawMu.Unlock()
	return a.view.Status()
}

// searching reports whether a search goroutine owns the grid. While it does,
// the event loop must not read cell states.
func (a *App) searching() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

// show replaces the status line and repaints what the event loop may touch.
func (a *App) show(status string) {
	a.drawMu.Lock()
	defer a.drawMu.Unlock()
	a.view.SetStatus(status)
	a.repaint()
}

// refresh repaints the current status, resyncing the terminal first after
// a resize.
func (a *App) refresh(resync bool) {
	a.drawMu.Lock()
	defer a.drawMu.Unlock()
	if resync {
		a.screen.Sync()
	}
	a.repaint()
}

// repaint draws the full frame when idle, or only the status line while a
// search is running; the search's own step hook draws the cells then.
func (a *App) repaint() {
	if a.searching() {
		a.view.DrawStatus(a.sess.Grid())
		return
	}
	a.view.Draw(a.sess.Grid())
}

// frame draws the full frame. Only the goroutine that owns the grid calls it.
func (a *App) frame() {
	a.drawMu.Lock()
	defer a.drawMu.Unlock()
	a.view.Draw(a.sess.Grid())
}
