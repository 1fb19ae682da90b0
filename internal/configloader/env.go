package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gridmark/pkg/config"
)

// envVarPrefix is the prefix for all gridmark environment variables.
const envVarPrefix = "GRIDMARK_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FLAVOR":           {field: "flavor", typ: envTypeString},
	"DATA_AS":          {field: "html.data_as", typ: envTypeString},
	"UNSAFE":           {field: "html.unsafe", typ: envTypeBool},
	"XHTML":            {field: "html.xhtml", typ: envTypeBool},
	"HARD_WRAPS":       {field: "html.hard_wraps", typ: envTypeBool},
	"OUTPUT_DIR":       {field: "output.dir", typ: envTypeString},
	"OUTPUT_EXTENSION": {field: "output.extension", typ: envTypeString},
	"JOBS":             {field: "jobs", typ: envTypeInt},
	"FORMAT":           {field: "format", typ: envTypeString},
	"IGNORE":           {field: "ignore", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GRIDMARK_ (e.g., GRIDMARK_FLAVOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	case "html.data_as":
		cfg.HTML.DataAs = value
	case "output.dir":
		cfg.Output.Dir = value
	case "output.extension":
		cfg.Output.Extension = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "html.unsafe":
		cfg.HTML.Unsafe = value
	case "html.xhtml":
		cfg.HTML.XHTML = value
	case "html.hard_wraps":
		cfg.HTML.HardWraps = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GRIDMARK_FLAVOR":           "Markdown flavor: commonmark or gfm",
		"GRIDMARK_DATA_AS":          "data-as attribute of grid tables",
		"GRIDMARK_UNSAFE":           "Render raw HTML: true or false",
		"GRIDMARK_XHTML":            "Render XHTML void elements: true or false",
		"GRIDMARK_HARD_WRAPS":       "Render soft line breaks as <br>: true or false",
		"GRIDMARK_OUTPUT_DIR":       "Directory for rendered files",
		"GRIDMARK_OUTPUT_EXTENSION": "Extension of rendered files",
		"GRIDMARK_JOBS":             "Number of parallel workers (0 = auto)",
		"GRIDMARK_FORMAT":           "Event dump format: text or json",
		"GRIDMARK_IGNORE":           "Comma-separated list of ignore patterns",
	}
}
