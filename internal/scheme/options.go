package scheme

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts holds settings overriding those of every node of a scheme.
// A nil field leaves the node setting untouched.
type Opts struct {
	// Groupable overrides short flag grouping.
	Groupable *bool

	// Immediate overrides values glued to their flag.
	Immediate *bool

	// Delimiter overrides the flag/value separator. An empty
	// string disables delimiters for all nodes.
	Delimiter *string
}

// DefOpts returns the default scheme options: no overrides.
func DefOpts() Opts {
	return Opts{}
}

// Apply applies the given option functions.
func (opts Opts) Apply(optFuncs ...OptFunc) Opts {
	for _, optFunc := range optFuncs {
		if optFunc != nil {
			optFunc(&opts)
		}
	}

	return opts
}

// Groupable sets short flag grouping for all nodes.
func Groupable(groupable bool) OptFunc {
	return func(opt *Opts) { opt.Groupable = &groupable }
}

// Immediate sets immediate values for all nodes.
func Immediate(immediate bool) OptFunc {
	return func(opt *Opts) { opt.Immediate = &immediate }
}

// Delimiter sets the flag/value separator of all nodes.
func Delimiter(delimiter string) OptFunc {
	return func(opt *Opts) { opt.Delimiter = &delimiter }
}
