// Package prompt implements the interactive confirmation flow for proposed
// commit messages.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyMessage indicates editing or retyping produced an empty message.
var ErrEmptyMessage = errors.New("commit message is empty")

// Action is the user's choice for a proposed message.
type Action int

const (
	// ActionAccept uses the proposed message as is.
	ActionAccept Action = iota
	// ActionEdit opens the proposed message in an editor.
	ActionEdit
	// ActionReplace uses the typed text as the message.
	ActionReplace
	// ActionAbort cancels the commit.
	ActionAbort
)

// Outcome is the result of a confirmation prompt.
type Outcome struct {
	Action  Action
	Message string
}

// Confirm shows the proposed message on out and reads one reply from in.
// An empty reply or "y" accepts, "e" requests an editor, "n" rejects and
// asks for a retyped message, "q" aborts, and any other text replaces the
// message verbatim.
func Confirm(in io.Reader, out io.Writer, proposed string) (Outcome, error) {
	fmt.Fprintf(out, "Proposed commit message:\n\n    %s\n\n", proposed)
	fmt.Fprint(out, "Commit? [Y/n/e(dit)/q(uit)/or type a new message]: ")

	reader := bufio.NewReader(in)

	reply, err := readLine(reader)
	if err != nil {
		return Outcome{}, err
	}

	switch strings.ToLower(reply) {
	case "", "y", "yes":
		return Outcome{Action: ActionAccept, Message: proposed}, nil
	case "e", "edit":
		return Outcome{Action: ActionEdit, Message: proposed}, nil
	case "n", "no":
		return retype(reader, out)
	case "q", "quit":
		return Outcome{Action: ActionAbort}, nil
	}

	return Outcome{Action: ActionReplace, Message: reply}, nil
}

// retype asks for a replacement message after a rejection. An empty reply
// aborts the commit.
func retype(reader *bufio.Reader, out io.Writer) (Outcome, error) {
	fmt.Fprint(out, "Enter commit message: ")

	reply, err := readLine(reader)
	if err != nil {
		return Outcome{}, err
	}

	if reply == "" {
		return Outcome{Action: ActionAbort}, nil
	}

	return Outcome{Action: ActionReplace, Message: reply}, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read reply: %w", err)
	}

	return strings.TrimSpace(line), nil
}
