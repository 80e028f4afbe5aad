package vecmath

const (
	// DefaultPrecision is the number of significant digits kept by arithmetic.
	DefaultPrecision = 30

	// DefaultTolerance is the threshold used by IsZero, IsParallelTo and IsOrthogonalTo.
	DefaultTolerance = 1e-10
)

type options struct {
	precision int
	tolerance float64
}

func defaultOptions() options {
	return options{
		precision: DefaultPrecision,
		tolerance: DefaultTolerance,
	}
}

// Option configures a Vector at construction.
//
// Vectors produced by operations inherit the options of the receiver.
type Option func(*options)

// WithPrecision sets the number of significant digits kept by every
// coordinate and every derived scalar (magnitude, dot product, areas).
//
// Values below 1 fall back to DefaultPrecision.
func WithPrecision(digits int) Option {
	return func(o *options) {
		if digits < 1 {
			digits = DefaultPrecision
		}
		o.precision = digits
	}
}

// WithTolerance sets the default tolerance of the classification methods.
//
// Negative values fall back to DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol < 0 {
			tol = DefaultTolerance
		}
		o.tolerance = tol
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
