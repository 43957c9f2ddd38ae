package builders

import "strconv"

// Page-segmentation-mode flag spellings. Tesseract 4 switched to the
// double-dash form; the spelling is an explicit option here instead of a
// cached global engine version.
const (
	DefaultPSMFlag = "--psm"
	LegacyPSMFlag  = "-psm"
)

type options struct {
	layout       int
	psmFlag      string
	digits       bool
	dotMatrix    bool
	fax          bool
	singleColumn bool
}

// Option adjusts the engine configuration a builder advertises. Options
// never change how output is parsed.
type Option func(*options)

// WithLayout sets the tesseract page segmentation layout.
func WithLayout(layout int) Option {
	return func(o *options) { o.layout = layout }
}

// WithPSMFlag overrides the spelling of the page-segmentation flag for
// engines predating the double-dash form.
func WithPSMFlag(flag string) Option {
	return func(o *options) { o.psmFlag = flag }
}

// WithDigits restricts recognition to digit-like characters. Engines
// without CapabilityDigits must reject the pairing via EnsureSupported.
func WithDigits() Option {
	return func(o *options) { o.digits = true }
}

// WithDotMatrix enables cuneiform's dot-matrix printout preset.
func WithDotMatrix() Option {
	return func(o *options) { o.dotMatrix = true }
}

// WithFax enables cuneiform's fax preset.
func WithFax() Option {
	return func(o *options) { o.fax = true }
}

// WithSingleColumn disables cuneiform's multi-column layout analysis.
func WithSingleColumn() Option {
	return func(o *options) { o.singleColumn = true }
}

func newOptions(layout int, opts ...Option) options {
	o := options{layout: layout, psmFlag: DefaultPSMFlag}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) tesseractFlags() []string {
	return []string{o.psmFlag, strconv.Itoa(o.layout)}
}

func (o options) tesseractConfigs(base ...string) []string {
	configs := append([]string(nil), base...)
	if o.digits {
		configs = append(configs, "digits")
	}
	return configs
}

func (o options) cuneiformArgs(format string) []string {
	args := []string{"-f", format}
	if o.dotMatrix {
		args = append(args, "--dotmatrix")
	}
	if o.fax {
		args = append(args, "--fax")
	}
	if o.singleColumn {
		args = append(args, "--singlecolumn")
	}
	return args
}

func (o options) capabilities() []Capability {
	if o.digits {
		return []Capability{CapabilityDigits}
	}
	return nil
}
