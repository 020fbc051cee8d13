package x

import "Muploader/internal/platform/browser"

type PageLocators struct {
	AddMedia    browser.Query
	FileInput   browser.Query
	PostText    browser.Query
	PostButton  browser.Query
	Toast       browser.Query
	ToastView   browser.Query
	ReplyText   browser.Query
	ReplyButton browser.Query
}

var Locators = PageLocators{
	AddMedia:  browser.Role("button", "Add photos or video"),
	FileInput: browser.TestID("fileInput"),
	PostText:  browser.TestID("tweetTextarea_0"),
	// disabled until the video finished processing
	PostButton:  browser.CSS(`[data-testid="tweetButtonInline"]:not([aria-disabled="true"])`),
	Toast:       browser.TestID("toast"),
	ToastView:   browser.Role("link", "View"),
	ReplyText:   browser.TestID("tweetTextarea_0"),
	ReplyButton: browser.CSS(`[data-testid="tweetButtonInline"]:not([aria-disabled="true"])`),
}
