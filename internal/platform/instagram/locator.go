package instagram

import "Muploader/internal/platform/browser"

type PageLocators struct {
	NotificationsNotNow browser.Query
	NewPost             browser.Query
	PostMenuItem        browser.Query
	FileInput           browser.Query
	ReelsNoticeOK       browser.Query
	NextButton          browser.Query
	EditDialog          browser.Query
	Caption             browser.Query
	ShareButton         browser.Query
	Checkmark           browser.Query
	CloseButton         browser.Query
}

var Locators = PageLocators{
	NotificationsNotNow: browser.Role("button", "Not Now").Exactly(),
	NewPost:             browser.Role("img", "New post").Exactly(),
	PostMenuItem:        browser.Role("img", "Post").Exactly(),
	FileInput:           browser.CSS(`input[type="file"]`),
	ReelsNoticeOK:       browser.Role("button", "OK").Exactly(),
	NextButton:          browser.Role("button", "Next").Exactly(),
	// the filter page has its own Next inside the "Edit" dialog
	EditDialog:  browser.Role("dialog", "Edit").Exactly(),
	Caption:     browser.Role("textbox", "Write a caption..."),
	ShareButton: browser.Role("button", "Share").Exactly(),
	Checkmark:   browser.AltText("Animated checkmark"),
	CloseButton: browser.Role("img", "Close").Exactly(),
}
