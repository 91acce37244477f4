package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// stdinPrompter reads operator answers line by line. Once the input stream
// ends every further prompt resolves to the zero answer so interactive loops
// terminate instead of spinning.
type stdinPrompter struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

func newStdinPrompter(in io.Reader, out io.Writer) *stdinPrompter {
	return &stdinPrompter{in: bufio.NewReader(in), out: out}
}

func (p *stdinPrompter) Input(prompt string) string {
	if p.closed {
		return ""
	}
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.closed = true
	}
	return strings.TrimSpace(line)
}

func (p *stdinPrompter) Confirm(prompt string) bool {
	for {
		switch strings.ToLower(p.Input(prompt + " (yes/no): ")) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if p.closed {
			return false
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}
