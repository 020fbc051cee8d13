package tiktok

import "Muploader/internal/platform/browser"

type PageLocators struct {
	FileInput     browser.Query
	Uploaded      browser.Query
	Editor        browser.Query
	EditCover     browser.Query
	UploadCover   browser.Query
	CoverInput    browser.Query
	ConfirmCover  browser.Query
	PostButton    browser.Query
	PostNow       browser.Query
	UploadAnother browser.Query
}

var Locators = PageLocators{
	FileInput:     browser.CSS(`input[type="file"][accept*="video"]`),
	Uploaded:      browser.AltText("Uploaded").Exactly(),
	Editor:        browser.CSS(`div.public-DraftEditor-content[contenteditable="true"]`),
	EditCover:     browser.CSS(`.cover-container`),
	UploadCover:   browser.Text("Upload cover"),
	CoverInput:    browser.CSS(`.cover-edit-container input[type="file"][accept*="image"]`),
	ConfirmCover:  browser.Role("button", "Confirm").Exactly(),
	PostButton:    browser.Role("button", "Post").Exactly(),
	PostNow:       browser.Role("button", "Post now").Exactly(),
	UploadAnother: browser.Role("button", "Upload"),
}
