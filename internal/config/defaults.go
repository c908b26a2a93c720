package config

// DefaultConfigPath is the conventional local config file location.
const DefaultConfigPath = ".traceability/config.json"

// GetDefaults returns the default configuration values as a flat map
// keyed by config name.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"specs_dir":     "docs/specs",
		"plans_dir":     "docs/plans",
		"tasks_dir":     "docs/tasks",
		"no_color":      false,
		"show_progress": true,
		"quiet":         false,
	}
}
