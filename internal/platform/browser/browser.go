// Package browser wraps the automation surface the platform uploaders drive:
// a shared persistent context, its pages and element locators.
package browser

import (
	"fmt"
	"strings"
	"time"
)

// BlankURL is the placeholder address of a page that has not navigated yet
const BlankURL = "about:blank"

// WaitState is the element state a locator waits for
type WaitState string

const (
	StateVisible  WaitState = "visible"
	StateHidden   WaitState = "hidden"
	StateAttached WaitState = "attached"
	StateDetached WaitState = "detached"
)

// Indefinitely disables the deadline of a wait. Used where a human is
// expected to sign in or solve a captcha, or where the platform processes the
// upload server side.
const Indefinitely time.Duration = 0

// Context is a browser context shared by every page of one upload run
type Context interface {
	NewPage() (Page, error)
	Pages() []Page
	Close(reason string) error
}

// Page is one tab, owned by exactly one uploader
type Page interface {
	Goto(url string) error
	URL() string
	Locate(q Query) Locator
	// ExpectFileChooser runs trigger and sets files on the file chooser it
	// opens. The chooser listener lives for this call only.
	ExpectFileChooser(trigger func() error, files ...string) error
	Screenshot(path string) error
	Close() error
	IsClosed() bool
}

// Locator resolves elements lazily, at action time
type Locator interface {
	Click() error
	Fill(text string) error
	SetInputFiles(files ...string) error
	// WaitFor blocks until the element reaches state. A zero timeout waits forever.
	WaitFor(state WaitState, timeout time.Duration) error
	IsVisible() bool
	Locate(q Query) Locator
}

type queryKind int

const (
	byCSS queryKind = iota
	byRole
	byLabel
	byText
	byTestID
	byAltText
	byPlaceholder
)

// Query is a selector value. Its fields are opaque to uploaders, which only
// build and chain them.
type Query struct {
	kind    queryKind
	value   string
	name    string
	exact   bool
	hasText string
}

func CSS(selector string) Query     { return Query{kind: byCSS, value: selector} }
func Label(text string) Query       { return Query{kind: byLabel, value: text} }
func Text(text string) Query        { return Query{kind: byText, value: text} }
func TestID(id string) Query        { return Query{kind: byTestID, value: id} }
func AltText(text string) Query     { return Query{kind: byAltText, value: text} }
func Placeholder(text string) Query { return Query{kind: byPlaceholder, value: text} }

// Role matches an ARIA role, narrowed by accessible name when name is set
func Role(role, name string) Query {
	return Query{kind: byRole, value: role, name: name}
}

// Exactly makes text and name matching case-sensitive and whole-string
func (q Query) Exactly() Query {
	q.exact = true
	return q
}

// WithText keeps only matches that contain s somewhere inside
func (q Query) WithText(s string) Query {
	q.hasText = s
	return q
}

func (q Query) String() string {
	var b strings.Builder
	switch q.kind {
	case byCSS:
		b.WriteString("css=" + q.value)
	case byRole:
		b.WriteString("role=" + q.value)
		if q.name != "" {
			fmt.Fprintf(&b, "[name=%q]", q.name)
		}
	case byLabel:
		fmt.Fprintf(&b, "label=%q", q.value)
	case byText:
		fmt.Fprintf(&b, "text=%q", q.value)
	case byTestID:
		fmt.Fprintf(&b, "testid=%q", q.value)
	case byAltText:
		fmt.Fprintf(&b, "alt=%q", q.value)
	case byPlaceholder:
		fmt.Fprintf(&b, "placeholder=%q", q.value)
	}
	if q.exact {
		b.WriteString("s")
	}
	if q.hasText != "" {
		fmt.Fprintf(&b, " >> has-text=%q", q.hasText)
	}
	return b.String()
}

// Probe reports whether an optional element shows up within timeout. A
// non-positive timeout checks the current state only.
func Probe(l Locator, timeout time.Duration) bool {
	if timeout <= 0 {
		return l.IsVisible()
	}
	return l.WaitFor(StateVisible, timeout) == nil
}
