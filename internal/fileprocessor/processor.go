// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/intcfg/internal/cfg"
	"github.com/retroenv/intcfg/internal/dot"
	"github.com/retroenv/intcfg/internal/intcode"
	"github.com/retroenv/intcfg/internal/loader"
	"github.com/retroenv/intcfg/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete conversion workflow for a single file:
// load the program, decode it, build the control flow graph and write the
// dot document.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	convOptions options.Converter) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	program, err := loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	instructions := intcode.Decode(program)
	graph := cfg.Build(instructions)

	logger.Debug("Program analyzed",
		log.String("file", opts.Input),
		log.Int("cells", len(program)),
		log.Int("instructions", len(instructions)),
		log.Int("blocks", len(graph.Blocks)),
		log.Int("edges", len(graph.Edges)))

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	if err := dot.New(writer, convOptions).Write(graph); err != nil {
		return fmt.Errorf("writing graph: %w", err)
	}

	if opts.Output != "" {
		logger.Info("Graph written", log.String("output", opts.Output))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".dot"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("intcfg", log.String("version", buildinfo.Version(version, commit, date)))
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}
