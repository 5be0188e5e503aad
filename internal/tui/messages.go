package tui

type apiKeysLoadedMsg struct{}

type apiKeysSavedMsg struct{}

type copiedMsg struct {
	name string
	err  error
}

type clearStatusMsg struct {
	seq int
}
