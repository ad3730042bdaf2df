package blueprint

// CopiedMsg reports the outcome of a clipboard copy.
type CopiedMsg struct {
	Err error
}

// ClearCopiedMsg resets the transient copy indicator after its fixed window.
type ClearCopiedMsg struct{}

// SavedMsg reports the outcome of a manifest file export.
type SavedMsg struct {
	Path string
	Err  error
}
