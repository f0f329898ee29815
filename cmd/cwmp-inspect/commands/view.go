package commands

import (
	"fmt"
	"io"

	"github.com/cwmp-models/cwmp-go/pkg/inspect"
)

// ViewOptions controls the view command output.
type ViewOptions struct {
	Options

	// Path selects the subtree to show. Empty shows the whole document.
	Path string

	// Table prints a flat parameter table instead of the tree.
	Table bool

	NoMetadata bool
	NoCounters bool
}

// RunView prints the object tree of a document.
func RunView(path string, opts ViewOptions, w io.Writer) error {
	root, err := Load(path)
	if err != nil {
		return err
	}
	insp := inspect.NewInspector(root, opts.ParamOptions()...)

	f := inspect.NewFormatter()
	f.ShowMetadata = !opts.NoMetadata
	f.ShowCounters = !opts.NoCounters

	if opts.Table {
		rows, err := insp.Parameters(opts.Path)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, f.FormatParameterTable(rows))
		return err
	}

	tree, err := insp.Tree(opts.Path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, f.FormatTree(tree))
	return err
}
