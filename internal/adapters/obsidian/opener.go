package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener implements ports.ObsidianOpener
type Opener struct {
	vaultPath string
	vaultName string
}

// NewOpener creates a new Obsidian opener for the given vault path.
// Obsidian identifies vaults by their directory name.
func NewOpener(vaultPath string) *Opener {
	return &Opener{
		vaultPath: vaultPath,
		vaultName: filepath.Base(vaultPath),
	}
}

// OpenFile opens a synced note in Obsidian using the obsidian:// URI scheme
func (o *Opener) OpenFile(filePath string) error {
	uri, err := o.BuildURI(filePath)
	if err != nil {
		return err
	}
	return openURI(uri)
}

// OpenVault opens the vault itself without focusing a specific file
func (o *Opener) OpenVault() error {
	return openURI(o.BuildVaultURI())
}

// BuildURI constructs the obsidian:// URI for a note inside the vault.
// The path must point below the vault root.
func (o *Opener) BuildURI(filePath string) (string, error) {
	note, err := o.vaultRelative(filePath)
	if err != nil {
		return "", err
	}
	return o.BuildVaultURI() + "&file=" + url.PathEscape(note), nil
}

// BuildVaultURI constructs the obsidian:// URI for the vault root.
// Obsidian does not decode + as a space, so values are percent-encoded.
func (o *Opener) BuildVaultURI() string {
	return "obsidian://open?vault=" + url.PathEscape(o.vaultName)
}

// vaultRelative rewrites an absolute note path as the slash-separated path
// Obsidian expects, relative to the vault root.
func (o *Opener) vaultRelative(filePath string) (string, error) {
	rel, err := filepath.Rel(o.vaultPath, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not inside the vault %s", filePath, o.vaultPath)
	}
	return filepath.ToSlash(rel), nil
}

// openURI hands the URI to the platform's URL handler, which Obsidian
// registers itself with at install time.
func openURI(uri string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", uri).Run()
	case "linux":
		return exec.Command("xdg-open", uri).Run()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", uri).Run()
	default:
		return fmt.Errorf("cannot open obsidian:// URIs on %s", runtime.GOOS)
	}
}
