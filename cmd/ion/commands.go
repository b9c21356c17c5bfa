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
	"github.com/scott-cotton/cli"
)

// MainCommand returns the root of the command tree.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts := []*cli.Opt{
		{
			Name:        "o",
			Aliases:     []string{"output"},
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
	}

	return cli.NewCommandAt(&cfg.Main, "ion").
		WithSynopsis("ion [opts] command [opts]").
		WithDescription("ion is a tool for working with Ion data.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ionMain(cfg, cc, args)
		}).
		WithSubs(
			InspectCommand(cfg),
			VersionCommand(cfg))
}

// InspectCommand returns the inspect subcommand.
func InspectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InspectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"skip-bytes"},
			Description: "skip the items that end within the first n bytes of each input",
			Type:        cli.NamedFuncOpt(byteCountOpt("--skip-bytes", &cfg.SkipBytes), "(n)"),
		},
		&cli.Opt{
			Name:        "l",
			Aliases:     []string{"limit-bytes"},
			Description: "stop after the first n bytes following any skipped bytes; 0 means no limit",
			Type:        cli.NamedFuncOpt(byteCountOpt("--limit-bytes", &cfg.LimitBytes), "(n)"),
		},
		&cli.Opt{
			Name:        "hexstr",
			Description: "inspect the bytes spelled out by this hex string instead of reading inputs",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.HexString), "(hex)"),
		},
		&cli.Opt{
			Name:        "color",
			Description: "when to colorize output: auto, always or never",
			Type:        cli.NamedFuncOpt(cfg.colorOpt, "(mode)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "YAML file supplying default settings (default $" + configEnvVar + ")",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.ConfigPath), "(filepath)"),
		},
		&cli.Opt{
			Name:        "log-level",
			Description: "log level for diagnostics written to stderr",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.LogLevel), "(level)"),
		})

	cmd := cli.NewCommand("inspect").
		WithAliases("i").
		WithSynopsis("inspect [opts] [files]").
		WithDescription("Displays hex-encoded binary Ion alongside its equivalent text Ion. " +
			"Reads stdin when no files are given, or when a file is named '-'.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ionInspect(cfg, cc, args)
		})
	cfg.Inspect = cmd
	return cmd
}

// VersionCommand returns the version subcommand.
func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("version").
		WithSynopsis("version").
		WithDescription("Prints version information about this tool, as Ion.").
		WithRun(func(cc *cli.Context, args []string) error {
			return ionVersion(cfg, cc, args)
		})
	cfg.Version = cmd
	return cmd
}
