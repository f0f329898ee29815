// Command cwmp-gen generates Go object models from Broadband Forum data model
// definitions.
//
// Usage:
//
//	cwmp-gen -manifest specs/manifest.yaml
//	cwmp-gen -model specs/tr181/device.yaml -output pkg/datamodel/tr181
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cwmp-models/cwmp-go/pkg/specparse"
	"golang.org/x/tools/imports"
)

func main() {
	manifestPath := flag.String("manifest", "", "Path to the model manifest (specs/manifest.yaml)")
	modelPath := flag.String("model", "", "Path to a single model definition YAML")
	outputDir := flag.String("output", "", "Output directory for -model")
	pkgName := flag.String("package", "", "Go package name (overrides the definition)")
	listOutput := flag.String("list", "", "Output path for the derived parameter list")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if (*manifestPath == "") == (*modelPath == "") || (*modelPath != "" && *outputDir == "") {
		fmt.Fprintln(os.Stderr, "Usage: cwmp-gen -manifest <path> | -model <path> -output <dir> [-package <name>] [-list <path>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := newLogger(*logLevel)

	var entries []specparse.RawManifestEntry
	if *manifestPath != "" {
		m, err := specparse.LoadManifest(*manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		entries = m.Models
	} else {
		entries = []specparse.RawManifestEntry{{File: *modelPath, Output: *outputDir}}
	}

	if err := run(logger, entries, *pkgName, *listOutput); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func run(logger *slog.Logger, entries []specparse.RawManifestEntry, pkgName, listOutput string) error {
	var allDefs []*specparse.RawModelDef

	for _, entry := range entries {
		def, err := specparse.LoadModelDef(entry.File)
		if err != nil {
			return fmt.Errorf("loading model: %w", err)
		}
		allDefs = append(allDefs, def)
		logger.Debug("loaded model", "name", def.Name, "objects", len(def.Objects))

		code, err := GenerateModel(def, pkgName)
		if err != nil {
			return fmt.Errorf("generating %s: %w", def.Name, err)
		}

		if err := os.MkdirAll(entry.Output, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		outFileName := specparse.FileName(def.Name) + "_gen.go"
		outPath := filepath.Join(entry.Output, outFileName)
		if err := writeFormatted(outPath, code); err != nil {
			return fmt.Errorf("writing %s: %w", outFileName, err)
		}
		logger.Info("generated", "model", def.Name, "path", outPath)
	}

	if listOutput != "" {
		list := DeriveParameterList(allDefs)
		if err := os.MkdirAll(filepath.Dir(listOutput), 0o755); err != nil {
			return fmt.Errorf("creating list output dir: %w", err)
		}
		if err := os.WriteFile(listOutput, []byte(list), 0o644); err != nil {
			return fmt.Errorf("writing parameter list: %w", err)
		}
		logger.Info("generated", "path", listOutput)
	}

	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
