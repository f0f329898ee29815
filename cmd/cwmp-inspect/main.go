// Command cwmp-inspect views and edits CWMP instance documents.
//
// Documents are Device, VoiceService or STBService trees stored as XML or
// CBOR. The format follows the file extension (.xml, .cbor).
//
// Usage:
//
//	cwmp-inspect <command> [flags] <file>
//
// Examples:
//
//	# Show the object tree
//	cwmp-inspect view device.xml
//
//	# Read parameters, addressing table entries by alias
//	cwmp-inspect get device.xml Device.IP.Interface.[lan].Name
//
//	# Set parameters and write the result as CBOR
//	cwmp-inspect set -o out.cbor device.xml Device.IP.Interface.1.Enable=true
//
//	# Edit a voice service interactively
//	cwmp-inspect shell -instance 2 voice.xml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cwmp-models/cwmp-go/cmd/cwmp-inspect/commands"
	"github.com/cwmp-models/cwmp-go/cmd/cwmp-inspect/interactive"
)

const usage = `cwmp-inspect - CWMP Instance Document Inspector

Usage:
  cwmp-inspect <command> [flags] <file>

Commands:
  view       Show the object tree of a document
  get        Print parameter values
  names      Print object and parameter names
  set        Set parameter values and write a new document
  validate   Check the constraints of a document
  convert    Convert a document between XML and CBOR
  shell      Edit a document interactively

Use "cwmp-inspect <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "get":
		runGet(args)
	case "names":
		runNames(args)
	case "set":
		runSet(args)
	case "validate":
		runValidate(args)
	case "convert":
		runConvert(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates the flag set of a command with the shared flags.
func newFlagSet(name, synopsis, args string) (*flag.FlagSet, *int, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `cwmp-inspect %s - %s

Usage:
  cwmp-inspect %s [flags] %s

Flags:
`, name, synopsis, name, args)
		fs.PrintDefaults()
	}
	instance := fs.Int("instance", 1, "Instance number of a multi-instance root (VoiceService, STBService)")
	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	return fs, instance, logLevel
}

func parse(fs *flag.FlagSet, args []string, minArgs int, instance *int, logLevel *string) commands.Options {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < minArgs {
		fmt.Fprintln(os.Stderr, "Error: missing arguments")
		fs.Usage()
		os.Exit(1)
	}
	return commands.Options{
		RootInstance: *instance,
		Logger:       newLogger(*logLevel),
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs, instance, logLevel := newFlagSet("view", "Show the object tree of a document", "<file>")
	path := fs.String("path", "", "Show only the subtree below this object path")
	table := fs.Bool("table", false, "Print a flat parameter table")
	noMeta := fs.Bool("no-metadata", false, "Omit type and access annotations")
	noCounters := fs.Bool("no-counters", false, "Omit NumberOfEntries parameters")
	opts := parse(fs, args, 1, instance, logLevel)

	err := commands.RunView(fs.Arg(0), commands.ViewOptions{
		Options:    opts,
		Path:       *path,
		Table:      *table,
		NoMetadata: *noMeta,
		NoCounters: *noCounters,
	}, os.Stdout)
	if err != nil {
		fail(err)
	}
}

func runGet(args []string) {
	fs, instance, logLevel := newFlagSet("get", "Print parameter values", "<file> [path...]")
	opts := parse(fs, args, 1, instance, logLevel)

	if err := commands.RunGet(fs.Arg(0), fs.Args()[1:], opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runNames(args []string) {
	fs, instance, logLevel := newFlagSet("names", "Print object and parameter names", "<file> [path]")
	nextLevel := fs.Bool("next-level", false, "List only the direct children of the path")
	opts := parse(fs, args, 1, instance, logLevel)

	if err := commands.RunNames(fs.Arg(0), fs.Arg(1), *nextLevel, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runSet(args []string) {
	fs, instance, logLevel := newFlagSet("set", "Set parameter values and write a new document", "-o <out> <file> <name=value>...")
	output := fs.String("o", "", "Output file (required)")
	opts := parse(fs, args, 2, instance, logLevel)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		fs.Usage()
		os.Exit(1)
	}
	if err := commands.RunSet(fs.Arg(0), fs.Args()[1:], *output, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runValidate(args []string) {
	fs, instance, logLevel := newFlagSet("validate", "Check the constraints of a document", "<file>")
	parse(fs, args, 1, instance, logLevel)

	if err := commands.RunValidate(fs.Arg(0), os.Stdout); err != nil {
		if commands.IsViolation(err) {
			os.Exit(1)
		}
		fail(err)
	}
}

func runConvert(args []string) {
	fs, instance, logLevel := newFlagSet("convert", "Convert a document between XML and CBOR", "<in> <out>")
	opts := parse(fs, args, 2, instance, logLevel)

	if err := commands.RunConvert(fs.Arg(0), fs.Arg(1), opts); err != nil {
		fail(err)
	}
}

func runShell(args []string) {
	fs, instance, logLevel := newFlagSet("shell", "Edit a document interactively", "<file>")
	opts := parse(fs, args, 1, instance, logLevel)

	root, err := commands.Load(fs.Arg(0))
	if err != nil {
		fail(err)
	}
	if err := interactive.New(fs.Arg(0), root, opts).Run(); err != nil {
		fail(err)
	}
}
