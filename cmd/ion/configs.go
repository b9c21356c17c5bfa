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
	"fmt"
	"os"
	"strconv"

	"github.com/amazon-ion/ion-inspect/internal/config"
	"github.com/amazon-ion/ion-inspect/internal/inspect"
	"github.com/scott-cotton/cli"
)

const configEnvVar = config.EnvVar

type MainConfig struct {
	Out      string
	CloseOut func() error

	Main *cli.Command
}

type InspectConfig struct {
	*MainConfig

	HideExpansion bool `cli:"name=hide-expansion desc='do not show values produced by macro expansion'"`
	Hex           bool `cli:"name=hex desc='read inputs as hexadecimal text, such as e0 01 00 ea'"`

	// Options below are nil unless given, so that they can override the
	// config file.
	SkipBytes  *int
	LimitBytes *int
	HexString  *string
	Color      *inspect.ColorMode
	LogLevel   *string

	ConfigPath *string

	Inspect *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *InspectConfig) colorOpt(_ *cli.Context, v string) (any, error) {
	mode, err := inspect.ParseColorMode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Color = &mode
	return mode, nil
}

// settings merges the config file with the options that were given.
func (cfg *InspectConfig) settings() (config.Config, error) {
	path := ""
	if cfg.ConfigPath != nil {
		path = *cfg.ConfigPath
	}
	settings, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cfg.SkipBytes != nil {
		settings.SkipBytes = *cfg.SkipBytes
	}
	if cfg.LimitBytes != nil {
		settings.LimitBytes = *cfg.LimitBytes
	}
	if cfg.HideExpansion {
		settings.HideExpansion = true
	}
	if cfg.Color != nil {
		settings.Color = cfg.Color.String()
	}
	if cfg.LogLevel != nil {
		settings.LogLevel = *cfg.LogLevel
	}

	if err := settings.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return settings, nil
}

// byteCountOpt parses a non-negative byte count into *dst.
func byteCountOpt(flag string, dst **int) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := parseByteCount(flag, v)
		if err != nil {
			return nil, err
		}
		*dst = &n
		return n, nil
	})
}

func parseByteCount(flag, v string) (int, error) {
	n, err := strconv.ParseUint(v, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: Invalid value for '%s': '%s'", cli.ErrUsage, flag, v)
	}
	return int(n), nil
}

func stringOpt(dst **string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		*dst = &v
		return v, nil
	})
}
