package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

const yamlTemplate = `# gridmark configuration
# See: https://github.com/yaklabco/gridmark

# Markdown flavor: commonmark or gfm
flavor: commonmark

html:
  # Value of the data-as attribute on grid tables ("none" to omit)
  data_as: songbook-grid
  # Render raw HTML from the source
  unsafe: false
  # Render <br /> instead of <br>
  xhtml: false
  # Render soft line breaks as <br>
  hard_wraps: false

output:
  # Output directory (empty writes next to each source file)
  dir: ""
  # Extension of rendered files
  extension: .html

# File patterns to ignore (doublestar glob patterns)
ignore:
  - "node_modules/**"
  - "vendor/**"
`

// GenerateTemplate creates a commented configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON([]byte(yamlTemplate))
	}
	return []byte(yamlTemplate), nil
}

// templateToJSON converts a YAML template to JSON format. Comments are lost.
func templateToJSON(yamlData []byte) ([]byte, error) {
	var data map[string]any
	if err := yaml.Unmarshal(yamlData, &data); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(out, '\n'), nil
}
