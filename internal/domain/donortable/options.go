package donortable

// Option applies a parsing option.
type Option func(*options)

type options struct {
	delimiter  rune
	sheetIndex int
	maxRows    int
}

// WithDelimiter sets the CSV field delimiter. Default ','.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		if d != 0 {
			o.delimiter = d
		}
	}
}

// WithSheetIndex selects the XLSX sheet to read. Default 0 (first sheet).
func WithSheetIndex(i int) Option {
	return func(o *options) {
		if i >= 0 {
			o.sheetIndex = i
		}
	}
}

// WithMaxRows caps the number of data rows read. Default unlimited.
func WithMaxRows(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRows = n
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
