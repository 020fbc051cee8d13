package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// pwContext adapts a playwright persistent context. pw is stopped after the
// context closes.
type pwContext struct {
	bc playwright.BrowserContext
	pw *playwright.Playwright
}

func (c *pwContext) NewPage() (Page, error) {
	p, err := c.bc.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	return pwPage{p: p}, nil
}

func (c *pwContext) Pages() []Page {
	pages := c.bc.Pages()
	out := make([]Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, pwPage{p: p})
	}
	return out
}

func (c *pwContext) Close(reason string) error {
	err := c.bc.Close(playwright.BrowserContextCloseOptions{Reason: playwright.String(reason)})
	if c.pw != nil {
		if stopErr := c.pw.Stop(); stopErr != nil {
			err = errors.Join(err, fmt.Errorf("stop playwright: %w", stopErr))
		}
	}
	return err
}

// pwPage is a value type so that two wrappers of the same tab compare equal
type pwPage struct {
	p playwright.Page
}

func (p pwPage) Goto(url string) error {
	if _, err := p.p.Goto(url); err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return nil
}

func (p pwPage) URL() string { return p.p.URL() }

// Locate resolves q from the document root so that page and locator queries
// share one code path.
func (p pwPage) Locate(q Query) Locator {
	root := pwLocator{l: p.p.Locator(":root")}
	return root.Locate(q)
}

func (p pwPage) ExpectFileChooser(trigger func() error, files ...string) error {
	chooser, err := p.p.ExpectFileChooser(trigger)
	if err != nil {
		return fmt.Errorf("file chooser: %w", err)
	}
	return chooser.SetFiles(files)
}

func (p pwPage) Screenshot(path string) error {
	_, err := p.p.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

func (p pwPage) Close() error {
	if p.p.IsClosed() {
		return nil
	}
	return p.p.Close()
}

func (p pwPage) IsClosed() bool { return p.p.IsClosed() }

type pwLocator struct {
	l playwright.Locator
}

func (l pwLocator) Click() error {
	return l.l.Click()
}

func (l pwLocator) Fill(text string) error {
	return l.l.Fill(text)
}

func (l pwLocator) SetInputFiles(files ...string) error {
	return l.l.SetInputFiles(files)
}

func (l pwLocator) WaitFor(state WaitState, timeout time.Duration) error {
	st := playwright.WaitForSelectorState(state)
	return l.l.WaitFor(playwright.LocatorWaitForOptions{
		State:   &st,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (l pwLocator) IsVisible() bool {
	visible, err := l.l.IsVisible()
	return err == nil && visible
}

func (l pwLocator) Locate(q Query) Locator {
	var next playwright.Locator
	switch q.kind {
	case byRole:
		opts := playwright.LocatorGetByRoleOptions{Exact: playwright.Bool(q.exact)}
		if q.name != "" {
			opts.Name = q.name
		}
		next = l.l.GetByRole(playwright.AriaRole(q.value), opts)
	case byLabel:
		next = l.l.GetByLabel(q.value, playwright.LocatorGetByLabelOptions{Exact: playwright.Bool(q.exact)})
	case byText:
		next = l.l.GetByText(q.value, playwright.LocatorGetByTextOptions{Exact: playwright.Bool(q.exact)})
	case byTestID:
		next = l.l.GetByTestId(q.value)
	case byAltText:
		next = l.l.GetByAltText(q.value, playwright.LocatorGetByAltTextOptions{Exact: playwright.Bool(q.exact)})
	case byPlaceholder:
		next = l.l.GetByPlaceholder(q.value, playwright.LocatorGetByPlaceholderOptions{Exact: playwright.Bool(q.exact)})
	default:
		next = l.l.Locator(q.value)
	}
	if q.hasText != "" {
		next = next.Filter(playwright.LocatorFilterOptions{HasText: q.hasText})
	}
	return pwLocator{l: next}
}
