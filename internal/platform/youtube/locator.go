package youtube

import "Muploader/internal/platform/browser"

type PageLocators struct {
	CreateButton    browser.Query
	UploadVideo     browser.Query
	FileInput       browser.Query
	TitleBox        browser.Query
	DescriptionBox  browser.Query
	ThumbnailButton browser.Query
	MadeForKids     browser.Query
	NotForKids      browser.Query
	NextButton      browser.Query
	PublicRadio     browser.Query
	PublishButton   browser.Query
	CloseDialog     browser.Query
	CloseButton     browser.Query
}

var Locators = PageLocators{
	CreateButton:    browser.Label("Create").Exactly(),
	UploadVideo:     browser.Text("Upload video"),
	FileInput:       browser.CSS(`input[type="file"]`),
	TitleBox:        browser.CSS(`#title-textarea #textbox`),
	DescriptionBox:  browser.CSS(`#description-textarea #textbox`),
	ThumbnailButton: browser.CSS(`ytcp-thumbnail-uploader #select-button`),
	MadeForKids:     browser.Role("radio", "Yes, it's made for kids"),
	NotForKids:      browser.Role("radio", "No, it's not made for kids"),
	NextButton:      browser.Label("Next"),
	PublicRadio:     browser.Role("radio", "Public"),
	PublishButton:   browser.Label("Publish"),
	// several dialogs carry a "Close" button, the confirmation one sits in #close-button
	CloseDialog: browser.CSS(`ytcp-button#close-button`),
	CloseButton: browser.Role("button", "Close"),
}
