package screen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/beanboi7/chyp8/emu/gfx"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03

	ansiClear      = "\x1b[2J"
	ansiHome       = "\x1b[H"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"

	// escapeTimeout separates a lone Escape key from the start of an escape
	// sequence sent by arrow and function keys.
	escapeTimeout = 50 * time.Millisecond
)

var ErrNotTerminal = errors.New("standard input is not a terminal")

// Terminal renders to stdout and reads keys from stdin in raw mode.
type Terminal struct {
	logger   *log.Logger
	out      io.Writer
	fd       int
	oldState *term.State

	mu         sync.Mutex
	pressedAt  [keypad.Keys]time.Time
	quit       bool
	escapeAt   time.Time // pending Escape, quits unless more bytes follow
	inSequence bool

	last  gfx.Framebuffer
	drawn bool
}

// NewTerminal switches stdin to raw mode and starts reading key presses.
// Close restores the terminal.
func NewTerminal(logger *log.Logger) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if width < gfx.Width || height < gfx.Height/2 {
			logger.Warn("Terminal is smaller than the display",
				log.Int("columns", width),
				log.Int("rows", height))
		}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}

	t := &Terminal{
		logger:   logger,
		out:      os.Stdout,
		fd:       fd,
		oldState: oldState,
	}
	fmt.Fprint(t.out, ansiClear+ansiHideCursor)

	go t.readKeys(os.Stdin)
	return t, nil
}

func (t *Terminal) readKeys(in io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			t.press(buf[0], time.Now())
		}
		if err != nil {
			t.logger.Debug("Stopped reading keys", log.Err(err))
			return
		}
	}
}

func (t *Terminal) press(b byte, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.escapeAt.IsZero() {
		pending := t.escapeAt
		t.escapeAt = time.Time{}
		if now.Sub(pending) < escapeTimeout {
			// CSI and SS3 sequences continue after the introducer, any other
			// byte is an Alt modified key and dropped
			t.inSequence = b == '[' || b == 'O'
			return
		}
		t.quit = true
	}

	if t.inSequence {
		// parameter bytes are below 0x40, the final byte ends the sequence
		if b >= 0x40 && b <= 0x7e {
			t.inSequence = false
		}
		return
	}

	switch b {
	case keyCtrlC:
		t.quit = true
	case keyEscape:
		t.escapeAt = now
	default:
		if key, ok := KeyForRune(rune(b)); ok {
			t.pressedAt[key] = now
		}
	}
}

func (t *Terminal) Poll(keys *keypad.Keypad) bool {
	return t.poll(keys, time.Now())
}

func (t *Terminal) poll(keys *keypad.Keypad, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	var state [keypad.Keys]bool
	for key, at := range t.pressedAt {
		state[key] = !at.IsZero() && now.Sub(at) < keyRepeatDuration
	}
	keys.Update(state)

	if !t.escapeAt.IsZero() && now.Sub(t.escapeAt) >= escapeTimeout {
		t.quit = true
	}
	return t.quit
}

// Render redraws the screen when the framebuffer changed since the last call.
func (t *Terminal) Render(fb *gfx.Framebuffer) {
	if t.drawn && t.last == *fb {
		return
	}
	t.last = *fb
	t.drawn = true

	fmt.Fprint(t.out, ansiHome+RenderText(fb))
}

func (t *Terminal) Close() error {
	fmt.Fprint(t.out, ansiShowCursor+"\r\n")
	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.oldState); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	t.oldState = nil
	return nil
}
