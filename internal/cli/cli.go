// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/intcfg/internal/options"
)

// ParseFlags parses command line flags and returns program and converter options
func ParseFlags() (options.Program, options.Converter, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	convOptions := options.NewConverter()
	readConverterOptionFlags(flags, &convOptions)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, convOptions, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, convOptions, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	return opts, convOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: intcfg [options] <intcode program file>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to convert, please pass the file to convert as last argument", arg),
			}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output .dot file (default: input file name with .dot extension)")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatic .dot file naming, for example *.txt")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readConverterOptionFlags(flags *flag.FlagSet, opts *options.Converter) {
	flags.BoolVar(&opts.NoLabelColors, "nocolors", false, "do not colorize the disassembly in node labels")
}
