// Package config defines core configuration types for gridmark.
// These types are pure data structures; loading and precedence live in internal/configloader.
package config

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is supported.
func (f Flavor) IsValid() bool {
	return f == FlavorCommonMark || f == FlavorGFM
}

// OutputFormat specifies how event dumps are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// DefaultDataAs is the data-as attribute written on grid tables.
const DefaultDataAs = "songbook-grid"

// DataAsNone omits the data-as attribute. An empty value in a config layer
// means "not set" and keeps the value of the layer below.
const DataAsNone = "none"

// DefaultOutputExtension is the extension of rendered files.
const DefaultOutputExtension = ".html"

// HTMLConfig controls HTML rendering.
type HTMLConfig struct {
	// DataAs is the value of the data-as attribute on grid tables.
	// DataAsNone omits the attribute.
	DataAs string `yaml:"data_as"`

	// Unsafe renders raw HTML blocks and inline HTML.
	Unsafe bool `yaml:"unsafe"`

	// XHTML renders self-closing void elements.
	XHTML bool `yaml:"xhtml"`

	// HardWraps renders soft line breaks as <br>.
	HardWraps bool `yaml:"hard_wraps"`
}

// Attribute returns the data-as value to render, empty when omitted.
func (h HTMLConfig) Attribute() string {
	if h.DataAs == DataAsNone {
		return ""
	}
	return h.DataAs
}

// OutputConfig controls where rendered files are written.
type OutputConfig struct {
	// Dir is the output directory. Empty writes next to each source file.
	Dir string `yaml:"dir"`

	// Extension replaces the source file extension.
	Extension string `yaml:"extension"`
}

// Config is the root configuration structure for gridmark.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// HTML configures rendering.
	HTML HTMLConfig `yaml:"html"`

	// Output configures where rendered files go.
	Output OutputConfig `yaml:"output"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Format specifies the event dump format.
	Format OutputFormat `yaml:"-"`

	// Stdout prints rendered HTML instead of writing files.
	Stdout bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor: FlavorCommonMark,
		HTML: HTMLConfig{
			DataAs: DefaultDataAs,
		},
		Output: OutputConfig{
			Extension: DefaultOutputExtension,
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}
