package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/params"
)

// ErrInvalidAssignment is returned for set arguments not of the form
// name=value.
var ErrInvalidAssignment = errors.New("invalid assignment")

// RunGet prints the values of the named parameters, one "name = value" line
// each. Partial paths expand to every parameter below them.
func RunGet(path string, names []string, opts Options, w io.Writer) error {
	root, err := Load(path)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = []string{""}
	}
	values, err := params.GetParameterValues(root, names, opts.ParamOptions()...)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintf(w, "%s = %s\n", v.Name, v.Value)
	}
	return nil
}

// RunNames prints the object and parameter names below a path with their
// writable flag.
func RunNames(path, name string, nextLevel bool, opts Options, w io.Writer) error {
	root, err := Load(path)
	if err != nil {
		return err
	}
	infos, err := params.GetParameterNames(root, name, nextLevel, opts.ParamOptions()...)
	if err != nil {
		return err
	}
	for _, info := range infos {
		access := "R"
		if info.Writable {
			access = "W"
		}
		fmt.Fprintf(w, "%s  %s\n", access, info.Name)
	}
	return nil
}

// ParseAssignments parses "name=value" arguments.
func ParseAssignments(args []string) ([]params.ParameterValue, error) {
	values := make([]params.ParameterValue, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAssignment, arg)
		}
		values = append(values, params.ParameterValue{Name: name, Value: value})
	}
	return values, nil
}

// RunSet applies the assignments to a document and writes the result to
// output. Nothing is written if any assignment fails or the result violates
// a constraint.
func RunSet(path string, args []string, output string, opts Options, w io.Writer) error {
	values, err := ParseAssignments(args)
	if err != nil {
		return err
	}
	root, err := Load(path)
	if err != nil {
		return err
	}
	if err := params.SetParameterValues(root, values, opts.ParamOptions()...); err != nil {
		return err
	}
	if err := model.Validate(root); err != nil {
		return fmt.Errorf("document is invalid after set:\n%w", err)
	}
	if err := Save(output, root); err != nil {
		return err
	}
	opts.debugLog("saved", "path", output, "parameters", len(values))
	fmt.Fprintf(w, "Set %d parameter(s), wrote %s\n", len(values), output)
	return nil
}
