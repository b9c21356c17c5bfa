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

// Package input opens the streams a command reads: named files, stdin and
// inline hex, decompressing them if they are gzipped.
package input

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amazon-ion/ion-inspect/internal/hexreader"
	"github.com/sirupsen/logrus"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger sets the logger used to report how inputs were opened.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Stdin is the name that selects standard input.
const Stdin = "-"

// HexStringName is the name given to an input passed inline as hex.
const HexStringName = "<hex string>"

// Compression is the compression detected at the head of an input.
type Compression uint8

const (
	// NoCompression means the input is read as is.
	NoCompression Compression = iota
	// Gzip means the input was gzipped and is decompressed as it is read.
	Gzip
)

func (c Compression) String() string {
	if c == Gzip {
		return "gzip"
	}
	return "none"
}

var gzipMagic = []byte{0x1F, 0x8B}

// Options control how inputs are opened.
type Options struct {
	// Hex reads the input as hexadecimal text.
	Hex bool
	// Stdin is read for the input named "-". It defaults to os.Stdin.
	Stdin io.Reader
}

// An Input is an opened stream along with the name it is reported under.
type Input struct {
	name        string
	r           io.Reader
	compression Compression
	closers     []io.Closer
}

// Open opens the named input, "-" being standard input.
func Open(name string, opts Options) (*Input, error) {
	var src io.Reader
	var closers []io.Closer

	if name == Stdin {
		src = opts.Stdin
		if src == nil {
			src = os.Stdin
		}
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		src = f
		closers = append(closers, f)
	}

	in, err := newInput(name, src, opts.Hex)
	if err != nil {
		closeAll(closers)
		return nil, err
	}
	in.closers = append(closers, in.closers...)
	return in, nil
}

// FromHexString returns an input reading the bytes spelled out by hex.
func FromHexString(hex string) (*Input, error) {
	return newInput(HexStringName, strings.NewReader(hex), true)
}

// FromBytes returns an input reading data.
func FromBytes(name string, data []byte) (*Input, error) {
	return newInput(name, bytes.NewReader(data), false)
}

func newInput(name string, src io.Reader, hex bool) (*Input, error) {
	if hex {
		src = hexreader.NewReader(src)
	}

	in := &Input{name: name}

	br := bufio.NewReader(src)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("input: %s: %w", name, err)
	}

	if bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("input: %s: %w", name, err)
		}
		in.r = zr
		in.compression = Gzip
		in.closers = append(in.closers, zr)
	} else {
		in.r = br
	}

	fLogger.Debugf("opened %s (hex: %v, compression: %v)", name, hex, in.compression)
	return in, nil
}

// Name returns the name of the input: a path, "-" or HexStringName.
func (in *Input) Name() string {
	return in.name
}

// Compression returns the compression that was detected.
func (in *Input) Compression() Compression {
	return in.compression
}

// Read implements io.Reader, returning decompressed bytes.
func (in *Input) Read(p []byte) (int, error) {
	return in.r.Read(p)
}

// Close releases the input. Standard input is never closed.
func (in *Input) Close() error {
	return closeAll(in.closers)
}

func closeAll(closers []io.Closer) error {
	var first error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
