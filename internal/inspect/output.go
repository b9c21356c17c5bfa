/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package inspect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when an Output colorizes what it writes.
type ColorMode uint8

const (
	// ColorAuto colorizes when writing to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colorizes unconditionally.
	ColorAlways
	// ColorNever never colorizes.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses auto, always or never.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// An Output is the sink a table is rendered to. It buffers what it is
// given and, when colorizing, wraps styled runs in escape sequences. Write
// errors are sticky: once one occurs every later write is dropped and the
// error is reported by Err and Flush.
type Output struct {
	sink     *bufio.Writer
	w        io.Writer
	colorize bool
	err      error
}

// NewTerminalOutput returns an Output writing to f. In ColorAuto mode it
// colorizes only if f is a terminal.
func NewTerminalOutput(f *os.File, mode ColorMode) *Output {
	colorize := false
	switch mode {
	case ColorAlways:
		colorize = true
	case ColorAuto:
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	var w io.Writer = f
	if colorize {
		w = colorable.NewColorable(f)
	}
	return newOutput(w, colorize)
}

// NewOutput returns an Output writing to w. Files are treated as by
// NewTerminalOutput; other writers are colorized only in ColorAlways mode.
func NewOutput(w io.Writer, mode ColorMode) *Output {
	if f, ok := w.(*os.File); ok {
		return NewTerminalOutput(f, mode)
	}
	if mode == ColorAlways {
		return NewColorOutput(w)
	}
	return NewPlainOutput(w)
}

// NewPlainOutput returns an Output that writes to w without color.
func NewPlainOutput(w io.Writer) *Output {
	return newOutput(w, false)
}

// NewColorOutput returns an Output that writes to w with color.
func NewColorOutput(w io.Writer) *Output {
	return newOutput(w, true)
}

func newOutput(w io.Writer, colorize bool) *Output {
	sink := bufio.NewWriter(w)
	return &Output{sink: sink, w: sink, colorize: colorize}
}

// Colorize reports whether o writes escape sequences.
func (o *Output) Colorize() bool {
	return o.colorize
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	if o.err != nil {
		return 0, o.err
	}
	n, err := o.w.Write(p)
	if err != nil {
		o.err = err
	}
	return n, err
}

// WriteString writes s.
func (o *Output) WriteString(s string) {
	_, _ = io.WriteString(o, s)
}

// Printf writes formatted text.
func (o *Output) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(o, format, args...)
}

// WithStyle runs fn, rendering everything fn writes in style c. The style
// is always closed off, even if fn panics. Runs written by a nested call
// keep their own style, and c resumes after them.
func (o *Output) WithStyle(c *color.Color, fn func()) {
	if !o.colorize {
		fn()
		return
	}

	seg := &segment{}
	parent := o.w
	o.w = seg
	defer func() {
		o.w = parent
		c.EnableColor()
		rendered := seg.render(c)
		if rendered == "" {
			return
		}
		if outer, ok := parent.(*segment); ok {
			outer.addStyled(rendered)
			return
		}
		o.WriteString(rendered)
	}()
	fn()
}

// A segment collects what is written while a style is in force. Runs that
// a nested style has already rendered are kept apart from the plain text
// around them.
type segment struct {
	runs  []string
	plain []bool
	cur   strings.Builder
}

func (s *segment) Write(p []byte) (int, error) {
	return s.cur.Write(p)
}

func (s *segment) endRun() {
	if s.cur.Len() == 0 {
		return
	}
	s.runs = append(s.runs, s.cur.String())
	s.plain = append(s.plain, true)
	s.cur.Reset()
}

func (s *segment) addStyled(run string) {
	s.endRun()
	s.runs = append(s.runs, run)
	s.plain = append(s.plain, false)
}

// render returns the segment with c applied to each of its plain runs.
func (s *segment) render(c *color.Color) string {
	s.endRun()
	var sb strings.Builder
	for i, run := range s.runs {
		if s.plain[i] {
			sb.WriteString(c.Sprint(run))
		} else {
			sb.WriteString(run)
		}
	}
	return sb.String()
}

// Styled writes s in style c.
func (o *Output) Styled(c *color.Color, s string) {
	o.WithStyle(c, func() {
		o.WriteString(s)
	})
}

// Err returns the first write error, if any.
func (o *Output) Err() error {
	return o.err
}

// Flush writes any buffered output to the underlying writer.
func (o *Output) Flush() error {
	if o.err != nil {
		return o.err
	}
	if err := o.sink.Flush(); err != nil {
		o.err = err
	}
	return o.err
}
