// Package cli implements the command-line interface of the mbti tool.
//
// # Overview
//
// mbti prints records from the built-in catalog of the sixteen MBTI
// personality types. It never scores or classifies anyone; it only reads the
// catalog.
//
// # Commands
//
// list - Print the whole catalog:
//
//	mbti list [--format yaml|json|table] [--output FILE]
//
// get - Print one type, looked up case-insensitively:
//
//	mbti get [--format card|yaml|json|table] [--output FILE] CODE
//
// The default format is a colored terminal card. An unknown code is an error
// and exits with status 1.
//
// codes - Print the sixteen codes, one per line, in catalog order:
//
//	mbti codes
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL      Same as --log-level
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, unknown code, or output failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/DaRainFlavor/mbti-quiz/pkg/cli.version=1.0.0'"
package cli
