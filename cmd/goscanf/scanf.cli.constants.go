package main

// Command names
const (
	CmdNameScan    = "scan"
	CmdNameExplain = "explain"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagFormatString = "format"
	FlagInput        = "input"
	FlagOutputFormat = "output"
	FlagStrictMode   = "strict"
)

// Flag names - short form
const (
	FlagFormatStringShort = "f"
	FlagInputShort        = "i"
	FlagOutputFormatShort = "o"
)

// Flag default values
const (
	FlagDefaultOutputFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeNoMatch    = 3
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgNoCommand       = "no command specified"
	ErrMsgUnknownCommand  = "unknown command"
	ErrMsgMissingFormat   = "format string required"
	ErrMsgMissingInput    = "input required (argument, --input file, or stdin)"
	ErrMsgReadInputFailed = "failed to read input"
	ErrMsgCompileFailed   = "format compilation failed"
	ErrMsgScanFailed      = "extraction failed"
	ErrMsgNoMatch         = "input does not match format"
	ErrMsgInvalidOutput   = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `goscanf - scanf-style typed extraction CLI

Usage:
    goscanf <command> [options]

Commands:
    scan        Extract typed values from input using a format
    explain     Show the pattern a format compiles to
    version     Show version information
    help        Show help for a command

Use "goscanf help <command>" for more information about a command.`

	HelpScanUsage = `Extract typed values from input using a format

Usage:
    goscanf scan -f <format> [options] [input]

Options:
    -f, --format <format>   scanf format string (required)
    -i, --input <file>      Input file (use "-" for stdin)
    -o, --output <format>   Output format: text, json (default: text)
    --strict                Reject unrecognized % directives

Examples:
    goscanf scan -f "%d %s" "42 answers"
    goscanf scan -f "%(x)d,%(y)d" "3,4" -o json
    echo "pi = 3.14" | goscanf scan -f "pi = %f" -i -`

	HelpExplainUsage = `Show the pattern a format compiles to

Usage:
    goscanf explain -f <format> [options]

Options:
    -f, --format <format>   scanf format string (required)
    -o, --output <format>   Output format: text, json (default: text)
    --strict                Reject unrecognized % directives

Examples:
    goscanf explain -f "%d middle %s"
    goscanf explain -f "%(key)7s" -o json`

	HelpVersionUsage = `Show version information

Usage:
    goscanf version [options]

Options:
    -o, --output <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    goscanf help [command]

Commands:
    scan        Show help for scan command
    explain     Show help for explain command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "goscanf version %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// CLI metadata
const (
	CLIName = "goscanf"
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
)
