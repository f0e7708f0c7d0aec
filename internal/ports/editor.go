package ports

// EditorOpener opens a file in the user's terminal editor and blocks until
// the editor exits. Used by 'vaultsync edit' to hand the config file over.
type EditorOpener interface {
	// OpenFile opens path in $EDITOR, falling back to $VISUAL and then a
	// list of common editors.
	OpenFile(path string) error
}
