// Package host models the surface the client is embedded in. The only host
// resource the client touches is page scrolling, which is suppressed while
// the email dialog is shown.
package host

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/notesummarizer/internal/logging"
)

// ScrollLock is what the controller needs from the host page.
type ScrollLock interface {
	Suppress()
	Restore()
}

// Page is an in-process host page. Suppress and Restore are idempotent.
type Page struct {
	mu          sync.Mutex
	suppressed  bool
	transitions int
	onChange    func(suppressed bool)
	log         logging.Logger
}

// NewPage returns a page with scrolling enabled. onChange, if not nil, is
// called on every real transition.
func NewPage(log logging.Logger, onChange func(suppressed bool)) *Page {
	if log == nil {
		log = logging.Discard()
	}
	return &Page{log: log, onChange: onChange}
}

func (p *Page) Suppress() { p.set(true) }

func (p *Page) Restore() { p.set(false) }

func (p *Page) set(v bool) {
	p.mu.Lock()
	if p.suppressed == v {
		p.mu.Unlock()
		return
	}
	p.suppressed = v
	p.transitions++
	cb := p.onChange
	p.mu.Unlock()

	p.log.Debug(context.Background(), "page scroll changed", "suppressed", v)
	if cb != nil {
		cb(v)
	}
}

// Suppressed reports whether scrolling is currently suppressed.
func (p *Page) Suppressed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.suppressed
}

// Transitions is the number of real state changes so far.
func (p *Page) Transitions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.transitions
}
