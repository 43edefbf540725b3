package ident

import "strings"

// parseEnvFile parses KEY=value lines in the shape shared by
// /etc/os-release and /etc/machine-info. Values may be double quoted;
// comment and malformed lines are skipped.
func parseEnvFile(data string) map[string]string {
	fields := make(map[string]string)

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}

		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"`)
		fields[strings.TrimSpace(key)] = value
	}

	return fields
}
