package prompt

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbackEditor is used when no editor is configured anywhere.
const fallbackEditor = "vi"

// messageFilePattern names the temp file handed to the editor. The suffix
// lets editors pick up git commit message highlighting.
const messageFilePattern = "shipit-*-COMMIT_EDITMSG"

// ResolveEditor picks the editor command: the explicit override first, then
// $VISUAL, then $EDITOR, then vi.
func ResolveEditor(override string) string {
	if override != "" {
		return override
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	return fallbackEditor
}

// EditMessage opens initial in the editor and returns the edited text with
// surrounding whitespace trimmed. Returns ErrEmptyMessage when the result is
// blank.
func EditMessage(editor, initial string) (string, error) {
	file, err := os.CreateTemp("", messageFilePattern)
	if err != nil {
		return "", fmt.Errorf("create message file: %w", err)
	}

	path := file.Name()
	defer os.Remove(path)

	_, writeErr := file.WriteString(initial + "\n")
	closeErr := file.Close()

	if writeErr != nil {
		return "", fmt.Errorf("write message file: %w", writeErr)
	}

	if closeErr != nil {
		return "", fmt.Errorf("close message file: %w", closeErr)
	}

	// The editor value may carry arguments, e.g. "code --wait".
	parts := strings.Fields(editor)
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()
	if runErr != nil {
		return "", fmt.Errorf("run editor %s: %w", parts[0], runErr)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited message: %w", err)
	}

	message := strings.TrimSpace(string(edited))
	if message == "" {
		return "", ErrEmptyMessage
	}

	return message, nil
}
