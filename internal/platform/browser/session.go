package browser

import (
	"fmt"
	"sync"

	"Muploader/internal/utils"
)

// Manager hands out pages of one shared context and keeps track of which
// pages belong to an uploader.
type Manager struct {
	ctx   Context
	mutex sync.Mutex
	owned map[Page]struct{}
}

func NewManager(ctx Context) *Manager {
	return &Manager{
		ctx:   ctx,
		owned: make(map[Page]struct{}),
	}
}

// OpenPage opens a new page and records it as owned. Holding the lock while
// the page is created keeps CloseStrayBlankPage from seeing it half-registered.
func (m *Manager) OpenPage() (Page, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	page, err := m.ctx.NewPage()
	if err != nil {
		return nil, err
	}
	m.owned[page] = struct{}{}
	return page, nil
}

// Open returns a Session for platform on a freshly opened page
func (m *Manager) Open(platform string) (*Session, error) {
	page, err := m.OpenPage()
	if err != nil {
		return nil, err
	}
	return &Session{Platform: platform, Page: page, manager: m}, nil
}

// CloseStrayBlankPage closes the blank tab a persistent launch leaves at the
// front of the context. It must only run after the caller's own page has
// navigated. The first page is closed only if it is still blank, no uploader
// owns it and another page stays open, so the context never loses its last
// page. Reports whether a page was closed.
func (m *Manager) CloseStrayBlankPage() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	pages := m.ctx.Pages()
	if len(pages) < 2 {
		return false, nil
	}
	first := pages[0]
	if first.IsClosed() || first.URL() != BlankURL {
		return false, nil
	}
	if _, ok := m.owned[first]; ok {
		return false, nil
	}
	if err := first.Close(); err != nil {
		return false, fmt.Errorf("close blank page: %w", err)
	}
	return true, nil
}

// ClosePage releases page. Closing twice is a no-op.
func (m *Manager) ClosePage(page Page) error {
	m.mutex.Lock()
	delete(m.owned, page)
	m.mutex.Unlock()

	if page.IsClosed() {
		return nil
	}
	return page.Close()
}

// Owned returns the number of pages currently held by uploaders
func (m *Manager) Owned() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.owned)
}

// Session is one uploader's page in the shared context
type Session struct {
	Platform string
	Page     Page
	manager  *Manager
}

// Navigate loads url and only then drops the stray blank page
func (s *Session) Navigate(url string) error {
	utils.DebugWithPlatform(s.Platform, fmt.Sprintf("opening %s", url))
	if err := s.Page.Goto(url); err != nil {
		return err
	}
	closed, err := s.manager.CloseStrayBlankPage()
	if err != nil {
		utils.WarnWithPlatform(s.Platform, err.Error())
	} else if closed {
		utils.DebugWithPlatform(s.Platform, "closed stray blank page")
	}
	return nil
}

// Locate is shorthand for s.Page.Locate
func (s *Session) Locate(q Query) Locator {
	return s.Page.Locate(q)
}

func (s *Session) Close() error {
	return s.manager.ClosePage(s.Page)
}
