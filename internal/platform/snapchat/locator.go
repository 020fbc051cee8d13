package snapchat

import "Muploader/internal/platform/browser"

type PageLocators struct {
	FirstRunGotIt browser.Query
	FileInput     browser.Query
	Caption       browser.Query
	PostButton    browser.Query
	ConsentDialog browser.Query
	ConsentAccept browser.Query
	PostLive      browser.Query
}

var Locators = PageLocators{
	FirstRunGotIt: browser.Role("button", "Got it"),
	FileInput:     browser.CSS(`input[type="file"]`),
	Caption:       browser.Placeholder("Add a description and #topics"),
	PostButton:    browser.Role("button", "Post to Snapchat"),
	// only on the very first post of an account
	ConsentDialog: browser.Role("dialog", ""),
	ConsentAccept: browser.Role("button", "Accept").Exactly(),
	PostLive:      browser.Text("Your post is now live"),
}
