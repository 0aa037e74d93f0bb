// SPDX-License-Identifier: MIT

// Package prompt acquires the run parameters interactively.
//
// Invalid input never escapes as an error: the screen is cleared, a notice
// is printed and the question is asked again. Only exhausted input (EOF)
// or a broken port ends the loop.
package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fpassoc/console"
	"github.com/katalvlaran/fpassoc/experiment"
	"github.com/katalvlaran/fpassoc/report"
)

// Texts of the interactive session.
const (
	SizeQuestion   = "Enter the number of FP operations to add: "
	OffsetQuestion = "Enter the offset (default = 1): "
	InvalidInput   = "Input was invalid. Try again."
	CloseNotice    = "Press any key to close..."
)

// DefaultOffset is used when the offset answer is empty.
const DefaultOffset = 1.0

// minSize is the smallest accepted answer to SizeQuestion.
const minSize = 2

// ErrInputClosed is returned when input ends before a valid answer arrives.
var ErrInputClosed = errors.New("prompt: input closed")

// Session runs the question/answer loop over a console.Port.
type Session struct {
	port console.Port
}

// NewSession returns a Session bound to port.
func NewSession(port console.Port) *Session {
	return &Session{port: port}
}

// AskSize repeats SizeQuestion until it gets an integer greater than 1.
func (s *Session) AskSize() (int, error) {
	for {
		line, err := s.ask(SizeQuestion)
		if err != nil {
			return 0, err
		}
		size, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr == nil && size >= minSize {
			return size, nil
		}
		if err = s.reject(); err != nil {
			return 0, err
		}
	}
}

// AskOffset repeats OffsetQuestion until it gets a parseable float.
// An empty answer means DefaultOffset. "Inf" and "NaN" parse and are
// passed through; experiment.Run rejects them.
func (s *Session) AskOffset() (float64, error) {
	for {
		line, err := s.ask(OffsetQuestion)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return DefaultOffset, nil
		}
		offset, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if perr == nil {
			return offset, nil
		}
		if err = s.reject(); err != nil {
			return 0, err
		}
	}
}

// Present clears the screen and prints rep.
func (s *Session) Present(rep experiment.Report, opts report.Options) error {
	if err := s.port.Clear(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := report.Render(&buf, rep, opts); err != nil {
		return err
	}
	return s.port.Write(buf.String())
}

// Pause prints CloseNotice after a blank line and waits for a key.
func (s *Session) Pause() error {
	if err := s.port.Write("\n" + CloseNotice + "\n"); err != nil {
		return err
	}
	return s.port.WaitKey()
}

func (s *Session) ask(question string) (string, error) {
	if err := s.port.Write(question); err != nil {
		return "", err
	}
	line, err := s.port.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%q: %w", strings.TrimSpace(question), ErrInputClosed)
	}
	return line, err
}

func (s *Session) reject() error {
	if err := s.port.Clear(); err != nil {
		return err
	}
	return s.port.Write(InvalidInput + "\n")
}
