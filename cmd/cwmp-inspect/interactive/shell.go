// Package interactive provides the interactive shell of cwmp-inspect.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cwmp-models/cwmp-go/cmd/cwmp-inspect/commands"
	"github.com/cwmp-models/cwmp-go/pkg/inspect"
	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/params"
)

// Shell edits a loaded instance document.
type Shell struct {
	path      string
	root      model.Object
	opts      commands.Options
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	out       io.Writer

	// modified is set by set and cleared by save.
	modified bool
}

// New creates a shell for a document loaded from path.
func New(path string, root model.Object, opts commands.Options) *Shell {
	return &Shell{
		path:      path,
		root:      root,
		opts:      opts,
		inspector: inspect.NewInspector(root, opts.ParamOptions()...),
		formatter: inspect.NewFormatter(),
		out:       os.Stdout,
	}
}

// SetOutput sets the writer for command output.
func (s *Shell) SetOutput(w io.Writer) {
	s.out = w
}

// Modified reports whether the document has unsaved changes.
func (s *Shell) Modified() bool {
	return s.modified
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("tree"),
	readline.PcItem("get"),
	readline.PcItem("set"),
	readline.PcItem("names", readline.PcItem("-next")),
	readline.PcItem("validate"),
	readline.PcItem("save"),
	readline.PcItem("quit"),
)

// Run starts the interactive command loop.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.root.CWMPObject().Segment() + "> ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}
		if !s.Execute(line) {
			return nil
		}
	}
}

// Execute runs a single command line. It returns false when the shell
// should exit.
func (s *Shell) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "tree", "t":
		s.cmdTree(args)
	case "get", "g":
		s.cmdGet(args)
	case "set", "s":
		s.cmdSet(args)
	case "names", "n":
		s.cmdNames(args)
	case "validate", "v":
		s.cmdValidate()
	case "save":
		s.cmdSave(args)
	case "quit", "exit", "q":
		if s.modified {
			fmt.Fprintln(s.out, "Discarding unsaved changes")
		}
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

// debugLog logs a debug message if a logger is configured.
func (s *Shell) debugLog(msg string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Debug(msg, args...)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  tree [path]            - Show the object tree (or a subtree)
  get <path>             - Show a parameter, or all parameters below an object
  set <path> <value>     - Set a writable parameter
  names [path] [-next]   - List object and parameter names
  validate               - Check the document constraints
  save [file]            - Write the document (default: the loaded file)
  quit                   - Exit`)
}

func (s *Shell) cmdTree(args []string) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	tree, err := s.inspector.Tree(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatTree(tree))
}

func (s *Shell) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: get <path>")
		return
	}
	path := args[0]

	if strings.HasSuffix(path, ".") {
		rows, err := s.inspector.Parameters(path)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprint(s.out, s.formatter.FormatParameterTable(rows))
		return
	}

	p, err := s.inspector.Parameter(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, s.formatter.FormatParameter(p))
}

func (s *Shell) cmdSet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: set <path> <value>")
		return
	}
	// Values may contain spaces; an omitted value sets the empty string.
	value := strings.Join(args[1:], " ")
	if err := s.inspector.SetParameter(args[0], value); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.modified = true
	s.debugLog("set", "name", args[0], "value", value)

	p, err := s.inspector.Parameter(args[0])
	if err != nil {
		return
	}
	fmt.Fprintln(s.out, s.formatter.FormatParameter(p))
}

func (s *Shell) cmdNames(args []string) {
	path := ""
	nextLevel := false
	for _, arg := range args {
		if arg == "-next" || arg == "-next-level" {
			nextLevel = true
			continue
		}
		path = arg
	}

	infos, err := params.GetParameterNames(s.root, path, nextLevel, s.opts.ParamOptions()...)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, info := range infos {
		access := "R"
		if info.Writable {
			access = "W"
		}
		fmt.Fprintf(s.out, "  %s  %s\n", access, info.Name)
	}
}

func (s *Shell) cmdValidate() {
	if err := model.Validate(s.root); err != nil {
		fmt.Fprintf(s.out, "INVALID\n%v\n", err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdSave(args []string) {
	path := s.path
	if len(args) > 0 {
		path = args[0]
	}
	if err := commands.Save(path, s.root); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.modified = false
	fmt.Fprintf(s.out, "Saved %s\n", path)
}
