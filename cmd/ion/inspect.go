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

package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/amazon-ion/ion-inspect/internal/input"
	"github.com/amazon-ion/ion-inspect/internal/inspect"
	"github.com/amazon-ion/ion-inspect/ion"
	"github.com/scott-cotton/cli"
	"github.com/sirupsen/logrus"
)

func ionInspect(cfg *InspectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inspect.Parse(cc, args)
	if err != nil {
		return err
	}
	settings, err := cfg.settings()
	if err != nil {
		return err
	}

	logger, err := settings.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	setLogger(logger)

	mode, err := settings.ColorMode()
	if err != nil {
		return err
	}
	out := inspect.NewOutput(cc.Out, mode)

	opener := func(name string) (*input.Input, error) {
		return input.Open(name, input.Options{Hex: cfg.Hex, Stdin: cc.In})
	}
	if cfg.HexString != nil {
		hex := *cfg.HexString
		args = []string{input.HexStringName}
		opener = func(string) (*input.Input, error) {
			return input.FromHexString(hex)
		}
	} else if len(args) == 0 {
		args = []string{input.Stdin}
	}

	return inspectAll(out, args, opener, settings.Inspect())
}

// inspectAll renders each named input in turn. A failure confined to one
// input is reported once every input has been tried; a failure writing
// the output stops the run at once.
func inspectAll(out *inspect.Output, names []string, open func(string) (*input.Input, error), cfg inspect.Config) error {
	var errs []error
	for _, name := range names {
		in, err := open(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		err = inspectInput(out, in, cfg)
		in.Close()
		if outErr := out.Err(); outErr != nil {
			return ignoreBrokenPipe(outErr)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func setLogger(l *logrus.Logger) {
	inspect.SetLogger(l)
	input.SetLogger(l)
}

// inspectInput renders one input. Each input gets a fresh inspector.
func inspectInput(out *inspect.Output, in *input.Input, cfg inspect.Config) error {
	r, err := ion.NewReader(in)
	if err != nil {
		return fmt.Errorf("input: %s: %w", in.Name(), err)
	}
	if err := inspect.Inspect(in.Name(), r, out, cfg); err != nil {
		out.Flush()
		return err
	}
	return out.Flush()
}

// ignoreBrokenPipe drops the error returned when whoever was reading the
// output went away, as happens when it is piped to head.
func ignoreBrokenPipe(err error) error {
	if errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}
