package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/RaggaMufia/go-scanf"
)

// explainConfig holds parsed explain command configuration
type explainConfig struct {
	format string
	output string
	strict bool
}

// explainOutput represents JSON output for explain
type explainOutput struct {
	Format     string           `json:"format"`
	Expr       string           `json:"expr"`
	ResultKind string           `json:"result_kind"`
	Captures   int              `json:"captures"`
	CastPlan   []scanf.CastStep `json:"cast_plan"`
}

func runExplain(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseExplainFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingFormat, err)
		return ExitCodeUsageError
	}

	engine := scanf.MustNew(scanf.WithStrictFormats(cfg.strict))
	pattern, err := engine.Compile(cfg.format)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCompileFailed, err)
		return ExitCodeError
	}

	if cfg.output == OutputFormatJSON {
		out := explainOutput{
			Format:     pattern.Format(),
			Expr:       pattern.ExprString(),
			ResultKind: pattern.Kind().String(),
			Captures:   pattern.CaptureCount(),
			CastPlan:   pattern.CastPlan(),
		}
		jsonBytes, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, "format:  %s\n", pattern.Format())
	fmt.Fprintf(stdout, "expr:    %s\n", pattern.ExprString())
	fmt.Fprintf(stdout, "kind:    %s\n", pattern.Kind())
	fmt.Fprintf(stdout, "captures: %d\n", pattern.CaptureCount())
	for _, step := range pattern.CastPlan() {
		if step.Key != "" {
			fmt.Fprintf(stdout, "  %%(%s)%s\n", step.Key, step.Conv)
		} else {
			fmt.Fprintf(stdout, "  %%%s\n", step.Conv)
		}
	}
	return ExitCodeSuccess
}

func parseExplainFlags(args []string) (*explainConfig, error) {
	fs := flag.NewFlagSet(CmdNameExplain, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &explainConfig{}

	fs.StringVar(&cfg.format, FlagFormatString, "", "")
	fs.StringVar(&cfg.format, FlagFormatStringShort, "", "")
	fs.StringVar(&cfg.output, FlagOutputFormat, FlagDefaultOutputFormat, "")
	fs.StringVar(&cfg.output, FlagOutputFormatShort, FlagDefaultOutputFormat, "")
	fs.BoolVar(&cfg.strict, FlagStrictMode, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.format == "" {
		return nil, errors.New(ErrMsgMissingFormat)
	}
	if cfg.output != OutputFormatText && cfg.output != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidOutput)
	}
	return cfg, nil
}
