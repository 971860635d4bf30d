package tui

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	err  error
	code string
}

// clearStatusMsg hides the status line if it still shows message id.
type clearStatusMsg struct {
	id int
}
