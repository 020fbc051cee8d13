// Package browsertest provides an in-memory browser.Context for tests.
//
// Elements are addressed by the String() of their query, chained queries
// joined with " >> " (see Key). Every element exists unless hidden: waits
// for it to become visible succeed at once, but IsVisible reports false
// until Show is called, so instant checks (captcha detection) see a clean
// page by default. A hidden element fails every action and every wait for
// it to appear, including indefinite ones, so tests never hang.
package browsertest

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"Muploader/internal/platform/browser"
)

// Key joins queries the way chained locators are addressed
func Key(qs ...browser.Query) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = q.String()
	}
	return strings.Join(parts, " >> ")
}

// Context is a fake shared browser context
type Context struct {
	mutex      sync.Mutex
	pages      []*Page
	closes     int
	reason     string
	NewPageErr error
	CloseErr   error
	// OnGoto runs before a page records a navigation; tests use it to set up
	// a page once they know which platform it belongs to.
	OnGoto func(p *Page, url string)
}

// NewContext returns a context. withBlank adds the about:blank page a
// persistent launch opens on its own.
func NewContext(withBlank bool) *Context {
	c := &Context{}
	if withBlank {
		c.pages = append(c.pages, newPage(c, browser.BlankURL))
	}
	return c
}

func (c *Context) NewPage() (browser.Page, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.NewPageErr != nil {
		return nil, c.NewPageErr
	}
	p := newPage(c, browser.BlankURL)
	c.pages = append(c.pages, p)
	return p, nil
}

// Pages returns the open pages in creation order
func (c *Context) Pages() []browser.Page {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	out := make([]browser.Page, 0, len(c.pages))
	for _, p := range c.pages {
		if !p.IsClosed() {
			out = append(out, p)
		}
	}
	return out
}

// AllPages returns every page ever opened, closed ones included
func (c *Context) AllPages() []*Page {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	out := make([]*Page, len(c.pages))
	copy(out, c.pages)
	return out
}

func (c *Context) Close(reason string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.closes++
	c.reason = reason
	for _, p := range c.pages {
		p.markClosed()
	}
	return c.CloseErr
}

// CloseCount returns how many times Close was called
func (c *Context) CloseCount() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.closes
}

// CloseReason returns the reason of the last Close
func (c *Context) CloseReason() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.reason
}

// Page is a fake tab that records every action performed on it
type Page struct {
	mutex      sync.Mutex
	ctx        *Context
	url        string
	closed     bool
	hidden     map[string]bool
	shown      map[string]bool
	failures   map[string]error
	gotoErr    error
	chooserErr error
	actions    []string
}

func newPage(ctx *Context, url string) *Page {
	return &Page{
		ctx:      ctx,
		url:      url,
		hidden:   make(map[string]bool),
		shown:    make(map[string]bool),
		failures: make(map[string]error),
	}
}

// Hide makes the element at key absent
func (p *Page) Hide(key string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.hidden[key] = true
	delete(p.shown, key)
}

// Show makes the element at key visible right now
func (p *Page) Show(key string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.shown[key] = true
	delete(p.hidden, key)
}

// Fail makes op ("click", "fill", "files" or "wait") on key return err
func (p *Page) Fail(op, key string, err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.failures[op+" "+key] = err
}

func (p *Page) FailGoto(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.gotoErr = err
}

func (p *Page) FailChooser(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.chooserErr = err
}

// Actions returns the recorded actions in order
func (p *Page) Actions() []string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	out := make([]string, len(p.actions))
	copy(out, p.actions)
	return out
}

func (p *Page) record(action string) {
	p.actions = append(p.actions, action)
}

func (p *Page) markClosed() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.closed = true
}

func (p *Page) Goto(url string) error {
	if p.ctx != nil && p.ctx.OnGoto != nil {
		p.ctx.OnGoto(p, url)
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.closed {
		return errors.New("page closed")
	}
	p.record("goto " + url)
	if p.gotoErr != nil {
		return p.gotoErr
	}
	p.url = url
	return nil
}

func (p *Page) URL() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.url
}

func (p *Page) Locate(q browser.Query) browser.Locator {
	return &Locator{page: p, key: q.String()}
}

func (p *Page) ExpectFileChooser(trigger func() error, files ...string) error {
	if err := trigger(); err != nil {
		return err
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.chooserErr != nil {
		return p.chooserErr
	}
	p.record("chooser " + strings.Join(files, ","))
	return nil
}

func (p *Page) Screenshot(path string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.record("screenshot " + path)
	return nil
}

func (p *Page) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.closed {
		p.closed = true
		p.record("close")
	}
	return nil
}

func (p *Page) IsClosed() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.closed
}

// Locator is a fake element handle addressed by key
type Locator struct {
	page *Page
	key  string
}

func (l *Locator) Key() string { return l.key }

// act records action and returns the injected or absence error for op
func (l *Locator) act(op, action string) error {
	p := l.page
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.closed {
		return errors.New("page closed")
	}
	if err, ok := p.failures[op+" "+l.key]; ok {
		return err
	}
	if p.hidden[l.key] {
		return fmt.Errorf("element not found: %s", l.key)
	}
	p.record(action)
	return nil
}

func (l *Locator) Click() error {
	return l.act("click", "click "+l.key)
}

func (l *Locator) Fill(text string) error {
	return l.act("fill", "fill "+l.key+" = "+text)
}

func (l *Locator) SetInputFiles(files ...string) error {
	return l.act("files", "files "+l.key+" "+strings.Join(files, ","))
}

func (l *Locator) WaitFor(state browser.WaitState, timeout time.Duration) error {
	p := l.page
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.closed {
		return errors.New("page closed")
	}
	if err, ok := p.failures["wait "+l.key]; ok {
		return err
	}
	appearing := state == browser.StateVisible || state == browser.StateAttached
	if appearing && p.hidden[l.key] {
		return fmt.Errorf("timeout %s exceeded waiting for %s to be %s", timeout, l.key, state)
	}
	p.record(fmt.Sprintf("wait %s %s (%s)", state, l.key, timeout))
	return nil
}

func (l *Locator) IsVisible() bool {
	p := l.page
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return !p.closed && p.shown[l.key]
}

func (l *Locator) Locate(q browser.Query) browser.Locator {
	return &Locator{page: l.page, key: l.key + " >> " + q.String()}
}

// Index returns the position of the first recorded action equal to action,
// or -1.
func (p *Page) Index(action string) int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	for i, a := range p.actions {
		if a == action {
			return i
		}
	}
	return -1
}

// NewSession returns a session for platform on a fresh context that still
// has its launch blank page, plus the fake behind the session's page.
func NewSession(platform string) (*browser.Session, *Page, *Context) {
	ctx := NewContext(true)
	s, err := browser.NewManager(ctx).Open(platform)
	if err != nil {
		panic(err)
	}
	return s, s.Page.(*Page), ctx
}
