package configloader

import (
	"slices"

	"github.com/yaklabco/gridmark/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Booleans: only true overrides, so a layer cannot switch a flag back off
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Stdout {
		result.Stdout = true
	}

	result.HTML = mergeHTML(base.HTML, override.HTML)

	if override.Output.Dir != "" {
		result.Output.Dir = override.Output.Dir
	}
	if override.Output.Extension != "" {
		result.Output.Extension = override.Output.Extension
	}

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return result
}

func mergeHTML(base, override config.HTMLConfig) config.HTMLConfig {
	result := base
	if override.DataAs != "" {
		result.DataAs = override.DataAs
	}
	result.Unsafe = base.Unsafe || override.Unsafe
	result.XHTML = base.XHTML || override.XHTML
	result.HardWraps = base.HardWraps || override.HardWraps
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
