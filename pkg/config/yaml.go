package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the persistent settings to YAML.
func (s *Settings) ToYAML() ([]byte, error) {
	if s == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses settings from YAML bytes.
// Fields absent from the document are left at their zero value.
func FromYAML(data []byte) (*Settings, error) {
	settings := &Settings{}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return settings, nil
}

// Merge overlays the non-zero persistent fields of overlay onto base.
// Editor-provided fields are never taken from overlay.
func Merge(base, overlay *Settings) *Settings {
	if base == nil {
		base = NewSettings()
	}
	if overlay == nil {
		return base
	}

	result := *base
	if overlay.Engine != "" {
		result.Engine = overlay.Engine
	}
	if overlay.Reporter != "" {
		result.Reporter = overlay.Reporter
	}
	if overlay.Format != "" {
		result.Format = overlay.Format
	}
	if overlay.MaxSearchDepth > 0 {
		result.MaxSearchDepth = overlay.MaxSearchDepth
	}
	if overlay.PackageConfigKey != "" {
		result.PackageConfigKey = overlay.PackageConfigKey
	}
	if overlay.RCFileName != "" {
		result.RCFileName = overlay.RCFileName
	}
	if overlay.MarkerRoot != "" {
		result.MarkerRoot = overlay.MarkerRoot
	}
	if len(overlay.ExtraPath) > 0 {
		result.ExtraPath = append([]string(nil), overlay.ExtraPath...)
	}
	if overlay.LogLevel != "" {
		result.LogLevel = overlay.LogLevel
	}
	return &result
}
