package linkedin

import "Muploader/internal/platform/browser"

type PageLocators struct {
	AddMedia       browser.Query
	NextButton     browser.Query
	Editor         browser.Query
	PostButton     browser.Query
	UploadComplete browser.Query
}

var Locators = PageLocators{
	AddMedia:       browser.Label("Add media"),
	NextButton:     browser.Role("button", "Next").Exactly(),
	Editor:         browser.Role("textbox", "Text editor for creating content"),
	PostButton:     browser.Role("button", "Post").Exactly(),
	UploadComplete: browser.Text("Upload complete"),
}
