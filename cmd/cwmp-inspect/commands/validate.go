package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwmp-models/cwmp-go/pkg/model"
)

// RunValidate checks the declared constraints of a document and prints one
// line per violation. Errors other than violations are returned unprinted.
func RunValidate(path string, w io.Writer) error {
	root, err := Load(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	if err := model.Validate(root); err != nil {
		fmt.Fprintf(w, "%s: INVALID\n%v\n", path, err)
		return err
	}
	fmt.Fprintf(w, "%s: OK (%s)\n", path, root.CWMPObject().Name)
	return nil
}

// RunConvert re-encodes a document. Both formats follow the file extensions.
func RunConvert(in, out string, opts Options) error {
	root, err := Load(in)
	if err != nil {
		return err
	}
	if err := Save(out, root); err != nil {
		return err
	}
	opts.debugLog("converted", "from", in, "to", out)
	return nil
}

// IsViolation reports whether err is a constraint violation reported by
// RunValidate.
func IsViolation(err error) bool {
	return errors.Is(err, model.ErrConstraint) || errors.Is(err, model.ErrNotUnique)
}
