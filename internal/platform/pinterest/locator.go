package pinterest

import "Muploader/internal/platform/browser"

type PageLocators struct {
	FileInput     browser.Query
	Title         browser.Query
	Description   browser.Query
	Link          browser.Query
	ChangesStored browser.Query
	PublishButton browser.Query
	Publishing    browser.Query
}

var Locators = PageLocators{
	FileInput:     browser.CSS(`input[type="file"]`),
	Title:         browser.Placeholder("Add a title"),
	Description:   browser.Role("combobox", "Tell everyone what your Pin is about"),
	Link:          browser.Placeholder("Add a link"),
	ChangesStored: browser.Text("Changes stored!").Exactly(),
	// visible from the start, reads "Publishing" while a pin is sent
	PublishButton: browser.Role("button", "Publish").Exactly(),
	Publishing:    browser.Role("button", "Publishing"),
}
