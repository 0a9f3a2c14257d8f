// Package options contains the program options.
package options

// Program options of the converter.
type Program struct {
	Input  string
	Output string
	Batch  string

	Debug bool
	Quiet bool
}

// Converter defines options to control the graph conversion.
type Converter struct {
	NoLabelColors bool // render node labels without font colors
}

// NewConverter returns a new options instance with default options.
func NewConverter() Converter {
	return Converter{}
}
