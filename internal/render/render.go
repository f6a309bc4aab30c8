// Package render formats console output: request echoes, response bodies
// and the session-defaults block.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleStatusOK  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	styleStatusErr = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
)

// Response prints the HTTP status followed by the body, pretty-printed when
// it parses as JSON and verbatim otherwise.
func Response(w io.Writer, status int, body []byte) {
	fmt.Fprintln(w, "\nResponse:")
	style := styleStatusOK
	if status < 200 || status >= 300 {
		style = styleStatusErr
	}
	fmt.Fprintln(w, style.Render(strconv.Itoa(status)))
	fmt.Fprintln(w, prettyOrRaw(body))
}

func prettyOrRaw(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}

// JSON prints a labeled, indented JSON rendering of v. It is used for the
// request echo and the session-defaults block, so HTML escaping is off;
// operators read this, browsers do not.
func JSON(w io.Writer, label string, v any) {
	fmt.Fprintf(w, "\n%s\n", label)
	out, err := marshalIndent(v)
	if err != nil {
		fmt.Fprintf(w, "%v\n", v)
		return
	}
	fmt.Fprintln(w, string(out))
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
