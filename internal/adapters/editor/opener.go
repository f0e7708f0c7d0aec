package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditors are probed in order when neither $EDITOR nor $VISUAL is set.
var fallbackEditors = []string{"nvim", "vim", "vi", "nano", "code"}

// Opener implements ports.EditorOpener
type Opener struct{}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens a file in the user's preferred editor and waits for it to
// exit, handing the terminal over for the duration
func (o *Opener) OpenFile(path string) error {
	editor, err := findEditor()
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// findEditor resolves the editor to use: $EDITOR, then $VISUAL, then the
// first fallback present on PATH.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, nil
		}
	}

	for _, editor := range fallbackEditors {
		if path, err := exec.LookPath(editor); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no editor found: set $EDITOR or $VISUAL")
}
