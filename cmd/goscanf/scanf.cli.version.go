package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// versionConfig holds parsed version command configuration
type versionConfig struct {
	output string
}

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidOutput, err)
		return ExitCodeUsageError
	}

	version := VersionUnknown
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}

	if cfg.output == OutputFormatJSON {
		out := versionOutput{Version: version, GoVersion: runtime.Version()}
		jsonBytes, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, VersionTextTemplate+"\n", version, runtime.Version())
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (*versionConfig, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &versionConfig{}
	fs.StringVar(&cfg.output, FlagOutputFormat, FlagDefaultOutputFormat, "")
	fs.StringVar(&cfg.output, FlagOutputFormatShort, FlagDefaultOutputFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.output != OutputFormatText && cfg.output != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidOutput)
	}
	return cfg, nil
}
