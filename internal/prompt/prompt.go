// Package prompt implements the line-oriented prompts the console is built
// from. Each prompt blocks until a line arrives and re-asks on invalid
// input; the only errors it surfaces are read failures, so callers can
// treat a returned error as the end of the input stream.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads operator input line by line. The reader and writer are
// injected so tests can script an entire session.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New wraps the given streams in a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Say prints a guidance line above the next prompt.
func (p *Prompter) Say(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Sayf prints a formatted guidance line.
func (p *Prompter) Sayf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Prompter) scan() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	return p.scan()
}

// Text prompts until a non-empty value is read. A non-empty def is shown in
// brackets and returned when the operator just presses enter.
func (p *Prompter) Text(label, def string) (string, error) {
	for {
		raw, err := p.ask(label, def)
		if err != nil {
			return "", err
		}
		if raw != "" {
			return raw, nil
		}
		if def != "" {
			return def, nil
		}
		fmt.Fprintln(p.out, "This field is required.")
	}
}

// OptionalText reads a single value, returning "" when the operator presses
// enter without typing.
func (p *Prompter) OptionalText(label string) (string, error) {
	return p.ask(label, "")
}

// Int prompts until the input parses as an integer.
func (p *Prompter) Int(label string) (int, error) {
	return p.intLoop(label, "")
}

// IntDefault behaves like Int with def pre-filled.
func (p *Prompter) IntDefault(label string, def int) (int, error) {
	return p.intLoop(label, strconv.Itoa(def))
}

func (p *Prompter) intLoop(label, def string) (int, error) {
	for {
		raw, err := p.Text(label, def)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, "Please enter a valid integer.")
	}
}

// YesNo prompts for a y/n answer; enter takes the default.
func (p *Prompter) YesNo(label string, def bool) (bool, error) {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	for {
		fmt.Fprintf(p.out, "%s %s: ", label, suffix)
		raw, err := p.scan()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
