package command

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Source yields one requested angle per call. io.EOF marks exhaustion.
type Source interface {
	Next() (int, error)
}

// Interactive prompts on w and reads one angle per line from r. Lines
// that do not parse as an integer are reported and skipped; blank lines
// are ignored.
type Interactive struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewInteractive(r io.Reader, w io.Writer) *Interactive {
	return &Interactive{scanner: bufio.NewScanner(r), w: w}
}

func (s *Interactive) Next() (int, error) {
	for {
		fmt.Fprint(s.w, "Enter the servo angle (0-180): ")
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}
		angle, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintf(s.w, "not a number: %q\n", text)
			continue
		}
		return angle, nil
	}
}

// Script replays a fixed sequence of angles, for scripted runs and
// tests.
type Script struct {
	angles []int
	next   int
}

func NewScript(angles ...int) *Script {
	return &Script{angles: angles}
}

func (s *Script) Next() (int, error) {
	if s.next >= len(s.angles) {
		return 0, io.EOF
	}
	a := s.angles[s.next]
	s.next++
	return a, nil
}
