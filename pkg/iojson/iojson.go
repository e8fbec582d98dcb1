// iojson writes machine-readable JSON output for CLI commands.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Error is the envelope written to stderr when a command run with --json
// fails.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// IsTerminal reports whether f is attached to a terminal. Commands use it to
// decide between human and machine output.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func fallbackError(msg string, marshalErr error) string {
	// marshal the pieces individually so escaping stays correct
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(marshalErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders an Error as indented JSON. If the data itself cannot
// be marshaled, a hand-built envelope noting the marshal failure is returned
// instead; that case indicates a bug in the caller.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return fallbackError(msg, err)
	}
	return string(bits)
}

// WriteError writes an error envelope to stderr.
func WriteError(msg string, data map[string]any) error {
	_, err := fmt.Fprintln(os.Stderr, MarshalError(msg, data))
	return err
}

// WriteWith marshals obj as indented JSON to w, reporting marshal failures
// as an error envelope on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, fallbackError("error marshaling output", err))
		return werr
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
