package browser_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Muploader/internal/platform/browser"
	"Muploader/internal/platform/browser/browsertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseStrayBlankPage_ClosesUnownedBlank(t *testing.T) {
	ctx := browsertest.NewContext(true)
	m := browser.NewManager(ctx)

	s, err := m.Open("youtube")
	require.NoError(t, err)
	require.NoError(t, s.Navigate("https://youtube.com/"))

	pages := ctx.Pages()
	require.Len(t, pages, 1)
	assert.Equal(t, "https://youtube.com/", pages[0].URL())
	assert.True(t, ctx.AllPages()[0].IsClosed())
}

func TestCloseStrayBlankPage_NoopWhenFirstNotBlank(t *testing.T) {
	ctx := browsertest.NewContext(false)
	m := browser.NewManager(ctx)

	s, err := m.Open("x")
	require.NoError(t, err)
	require.NoError(t, s.Navigate("https://x.com/"))
	other, err := m.Open("facebook")
	require.NoError(t, err)

	closed, err := m.CloseStrayBlankPage()
	require.NoError(t, err)
	assert.False(t, closed)
	assert.Len(t, ctx.Pages(), 2)
	assert.False(t, other.Page.IsClosed())
}

func TestCloseStrayBlankPage_KeepsOwnedBlankPage(t *testing.T) {
	ctx := browsertest.NewContext(false)
	m := browser.NewManager(ctx)

	// the first driver has not navigated yet
	slow, err := m.Open("linkedIn")
	require.NoError(t, err)
	fast, err := m.Open("threads")
	require.NoError(t, err)
	require.NoError(t, fast.Navigate("https://www.threads.net/"))

	assert.False(t, slow.Page.IsClosed())
	assert.Equal(t, browser.BlankURL, slow.Page.URL())
}

func TestCloseStrayBlankPage_NeverClosesLastPage(t *testing.T) {
	ctx := browsertest.NewContext(true)
	m := browser.NewManager(ctx)

	closed, err := m.CloseStrayBlankPage()
	require.NoError(t, err)
	assert.False(t, closed)
	assert.Len(t, ctx.Pages(), 1)
}

func TestClosePage_Idempotent(t *testing.T) {
	ctx := browsertest.NewContext(false)
	m := browser.NewManager(ctx)

	s, err := m.Open("tiktok")
	require.NoError(t, err)
	assert.Equal(t, 1, m.Owned())

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 0, m.Owned())
	assert.True(t, s.Page.IsClosed())
}

func TestOpenPage_Error(t *testing.T) {
	ctx := browsertest.NewContext(false)
	ctx.NewPageErr = errors.New("context closed")
	m := browser.NewManager(ctx)

	_, err := m.Open("pinterest")
	assert.Error(t, err)
	assert.Equal(t, 0, m.Owned())
}

func TestConcurrentSessions(t *testing.T) {
	ctx := browsertest.NewContext(true)
	m := browser.NewManager(ctx)

	var wg sync.WaitGroup
	for _, name := range []string{"youtube", "x", "facebook", "tiktok", "threads"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			s, err := m.Open(name)
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, s.Navigate("https://"+name+".example/"))
		}(name)
	}
	wg.Wait()

	for _, p := range ctx.Pages() {
		assert.NotEqual(t, browser.BlankURL, p.URL())
	}
	assert.Equal(t, 5, m.Owned())
}

func TestProbe(t *testing.T) {
	ctx := browsertest.NewContext(false)
	page, err := ctx.NewPage()
	require.NoError(t, err)
	fake := page.(*browsertest.Page)

	thumbnail := browser.Role("button", "Upload thumbnail")
	assert.True(t, browser.Probe(page.Locate(thumbnail), time.Second))

	fake.Hide(browsertest.Key(thumbnail))
	assert.False(t, browser.Probe(page.Locate(thumbnail), time.Second))

	assert.False(t, browser.Probe(page.Locate(browser.Text("Next")), 0))
	fake.Show(browsertest.Key(browser.Text("Next")))
	assert.True(t, browser.Probe(page.Locate(browser.Text("Next")), 0))
}

func TestWaitCaptchaCleared(t *testing.T) {
	ctx := browsertest.NewContext(false)
	page, err := ctx.NewPage()
	require.NoError(t, err)
	fake := page.(*browsertest.Page)

	detected, _ := browser.DetectCaptcha(page)
	assert.False(t, detected)

	captcha := browsertest.Key(browser.CSS("iframe[src*='captcha']"))
	fake.Show(captcha)
	detected, kind := browser.DetectCaptcha(page)
	assert.True(t, detected)
	assert.Equal(t, "captcha iframe", kind)

	go func() {
		time.Sleep(30 * time.Millisecond)
		fake.Hide(captcha)
	}()
	assert.NoError(t, browser.WaitCaptchaCleared(context.Background(), page, "x", 5*time.Millisecond))
}

func TestWaitCaptchaCleared_Cancelled(t *testing.T) {
	bctx := browsertest.NewContext(false)
	page, err := bctx.NewPage()
	require.NoError(t, err)
	page.(*browsertest.Page).Show(browsertest.Key(browser.Text("Verify you are human")))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = browser.WaitCaptchaCleared(ctx, page, "tiktok", 5*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueryString(t *testing.T) {
	tests := []struct {
		q    browser.Query
		want string
	}{
		{browser.CSS(`input[type="file"]`), `css=input[type="file"]`},
		{browser.Role("button", "Post").Exactly(), `role=button[name="Post"]s`},
		{browser.Role("alert", ""), `role=alert`},
		{browser.Label("Create").Exactly(), `label="Create"s`},
		{browser.CSS(`[role="button"][tabindex="-1"]`).WithText("Post"), `css=[role="button"][tabindex="-1"] >> has-text="Post"`},
		{browser.TestID("fileInput"), `testid="fileInput"`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}
}
