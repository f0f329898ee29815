// Package commands implements the cwmp-inspect sub-commands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cwmp-models/cwmp-go/pkg/codec"
	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/params"

	// Register the data models.
	_ "github.com/cwmp-models/cwmp-go/pkg/datamodel/tr104"
	_ "github.com/cwmp-models/cwmp-go/pkg/datamodel/tr135"
	_ "github.com/cwmp-models/cwmp-go/pkg/datamodel/tr181"
)

// Options are shared by all commands.
type Options struct {
	// RootInstance is the instance number of a multi-instance root such
	// as VoiceService.
	RootInstance int

	Logger *slog.Logger
}

// ParamOptions returns the options for the parameter operations.
func (o Options) ParamOptions() []params.Option {
	opts := []params.Option{params.WithRootInstance(o.RootInstance)}
	if o.Logger != nil {
		opts = append(opts, params.WithLogger(o.Logger))
	}
	return opts
}

func (o Options) debugLog(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}

// Load reads an instance document. The format follows the file extension.
func Load(path string) (model.Object, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	obj, err := codec.Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return obj, nil
}

// Save writes an instance document. The format follows the file extension.
func Save(path string, obj model.Object) error {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := codec.Encode(format, obj)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
