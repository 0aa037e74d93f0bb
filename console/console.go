// SPDX-License-Identifier: MIT

// Package console is the minimal terminal port the interactive session
// talks to: write text, read a line, clear the screen, wait for a key.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// clearSequence homes the cursor and erases the display (ANSI).
const clearSequence = "\033[H\033[2J"

// Port abstracts the console so the session logic runs without a terminal.
type Port interface {
	// Write prints s verbatim.
	Write(s string) error
	// ReadLine returns the next line without its line terminator.
	// io.EOF is returned once input is exhausted and nothing was read.
	ReadLine() (string, error)
	// Clear erases the screen.
	Clear() error
	// WaitKey blocks until a single key press (or a line when not a TTY).
	WaitKey() error
}

// Terminal is the Port over real streams.
type Terminal struct {
	in  *bufio.Reader
	fd  int  // file descriptor of in, -1 when in is not a file
	tty bool // in is an interactive terminal
	out io.Writer
}

// NewTerminal wires a Terminal to in and out. Raw single-key reads are
// used only when in is an *os.File attached to a terminal.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{in: bufio.NewReader(in), fd: -1, out: out}
	if f, ok := in.(*os.File); ok {
		t.fd = int(f.Fd())
		t.tty = term.IsTerminal(t.fd)
	}
	return t
}

// Stdio returns a Terminal over os.Stdin and os.Stdout.
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

// Write prints s verbatim.
func (t *Terminal) Write(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}

// ReadLine reads up to the next '\n', trimming "\r\n" or "\n".
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear erases the screen.
func (t *Terminal) Clear() error {
	return t.Write(clearSequence)
}

// WaitKey reads one key in raw mode on a terminal, otherwise one line.
// Exhausted input counts as a key press.
func (t *Terminal) WaitKey() error {
	if !t.tty {
		if _, err := t.ReadLine(); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("console: raw mode: %w", err)
	}
	defer func() { _ = term.Restore(t.fd, state) }()

	if _, err = t.in.ReadByte(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
