package threads

import "Muploader/internal/platform/browser"

type PageLocators struct {
	CreateButton browser.Query
	FileInput    browser.Query
	Caption      browser.Query
	PostButton   browser.Query
	Alert        browser.Query
}

var Locators = PageLocators{
	CreateButton: browser.Label("Create").Exactly(),
	FileInput:    browser.CSS(`input[type="file"]`),
	Caption:      browser.CSS(`div[role="dialog"] div[contenteditable="true"]`),
	// two "Post" buttons share classes, only the dialog one has tabindex -1
	PostButton: browser.CSS(`[role="button"][tabindex="-1"]`).WithText("Post"),
	Alert:      browser.Role("alert", ""),
}
