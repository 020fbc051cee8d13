package facebook

import "Muploader/internal/platform/browser"

type PageLocators struct {
	PhotoVideo browser.Query
	FileInput  browser.Query
	Caption    browser.Query
	PostButton browser.Query
	Posting    browser.Query
}

var Locators = PageLocators{
	PhotoVideo: browser.Role("button", "Photo/video"),
	FileInput:  browser.CSS(`div[role="dialog"] input[type="file"]`),
	Caption:    browser.CSS(`div[role="dialog"] div[role="textbox"][contenteditable="true"]`),
	PostButton: browser.Role("button", "Post").Exactly(),
	Posting:    browser.Text("Posting"),
}
