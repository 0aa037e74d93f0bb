// SPDX-License-Identifier: MIT

package console

import (
	"io"
	"strings"
)

// Script is an in-memory Port: it serves Lines in order and records
// everything written. Clear and WaitKey are logged into Output as the
// markers "<clear>" and "<key>".
type Script struct {
	Lines  []string
	Output strings.Builder
	Clears int
	Keys   int
}

// Write records s.
func (s *Script) Write(str string) error {
	s.Output.WriteString(str)
	return nil
}

// ReadLine pops the next scripted line; io.EOF once they run out.
func (s *Script) ReadLine() (string, error) {
	if len(s.Lines) == 0 {
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}

// Clear records a screen clear.
func (s *Script) Clear() error {
	s.Clears++
	s.Output.WriteString("<clear>")
	return nil
}

// WaitKey records a key wait.
func (s *Script) WaitKey() error {
	s.Keys++
	s.Output.WriteString("<key>")
	return nil
}
