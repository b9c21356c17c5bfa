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
	"io"
	"runtime/debug"
	"strings"
	"time"

	"github.com/amazon-ion/ion-inspect/ion"
	"github.com/scott-cotton/cli"
)

// Set at build time with -ldflags "-X main.gitCommit=... -X main.buildTime=...".
var (
	gitCommit = ""
	buildTime = ""
)

func ionVersion(cfg *VersionConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Version.Parse(cc, args); err != nil {
		return err
	}
	return writeVersion(cc.Out)
}

func version() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
		if info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return "unknown"
}

// writeVersion writes version information as an Ion struct.
func writeVersion(w io.Writer) error {
	fields := []ion.Field{
		ion.NewField("version", ion.ValueExpr(ion.NewString(version()))),
	}

	if t, err := time.Parse(time.RFC3339, buildTime); err == nil {
		ts := ion.NewTimestamp(t.UTC(), ion.Second, ion.UTC, 0, "")
		fields = append(fields, ion.NewField("build_time", ion.ValueExpr(ion.NewTimestampValue(ts))))
	} else {
		fields = append(fields, ion.NewField("build_time", ion.ValueExpr(ion.NewString("unknown-buildtime"))))
	}

	tw := ion.NewTextWriter()
	var sb strings.Builder
	sb.WriteString("{")
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		tw.Reset()
		if err := tw.WriteValue(f.Value.Value); err != nil {
			return err
		}
		sb.WriteString(ion.FormatSymbol(f.Name.Token))
		sb.WriteString(": ")
		sb.WriteString(strings.TrimSpace(tw.String()))
	}
	sb.WriteString("}")

	_, err := fmt.Fprintln(w, sb.String())
	return err
}
