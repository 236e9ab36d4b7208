package config

import (
	"os"
	"regexp"
)

// envVarPattern matches ${VAR} or ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// ExpandEnv replaces environment variable references in the input string
// with their values.
//
// Supported formats:
//   - ${VAR}          - Replaced with the value of VAR, or empty string if not set
//   - ${VAR:-default} - Replaced with the value of VAR, or "default" if VAR is not set or empty
func ExpandEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		hasDefault := len(parts) >= 4 && parts[2] != ""
		defaultValue := ""
		if hasDefault {
			defaultValue = parts[3]
		}

		if value, exists := os.LookupEnv(varName); exists && value != "" {
			return value
		}
		if hasDefault {
			return defaultValue
		}
		return ""
	})
}

// ExpandEnvBytes is a convenience wrapper around ExpandEnv for byte slices.
// Useful for processing file contents before YAML/JSON unmarshaling.
func ExpandEnvBytes(input []byte) []byte {
	return []byte(ExpandEnv(string(input)))
}

// MissingEnvVars returns the names of referenced environment variables that
// are unset and carry no default. Useful for a clearer error than a failed
// URL parse deep in validation.
func MissingEnvVars(input string) []string {
	matches := envVarPattern.FindAllStringSubmatch(input, -1)
	seen := make(map[string]bool)
	missing := make([]string, 0)

	for _, match := range matches {
		if len(match) < 2 {
			continue
		}
		varName := match[1]
		hasDefault := len(match) >= 4 && match[2] != ""
		if seen[varName] || hasDefault {
			continue
		}
		seen[varName] = true
		if os.Getenv(varName) == "" {
			missing = append(missing, varName)
		}
	}

	return missing
}
