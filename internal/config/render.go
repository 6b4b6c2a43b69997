package config

import (
	"fmt"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# smgrid configuration (TOML)\n")
	for _, line := range renderOptions(GetConfigOptions()) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// UpdateTOML merges defaults into an existing TOML string and comments out
// unknown keys. Missing keys are inserted into their own table so the result
// stays valid TOML. It reports whether anything changed.
func UpdateTOML(existing string) (string, bool) {
	opts := GetConfigOptions()
	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines))
	seen := make(map[string]bool)
	sectionEnd := make(map[string]int)
	firstHeader := -1
	section := ""
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
			if firstHeader < 0 {
				firstHeader = len(out)
			}
			section = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			sectionEnd[section] = len(out)
			continue
		}
		key, ok := parseTOMLKey(trim)
		if !ok {
			out = append(out, line)
			continue
		}
		if section != "" {
			key = section + "." + key
		}
		if !known[key] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema", indent+"# "+trim)
			changed = true
			continue
		}
		seen[key] = true
		out = append(out, line)
		if section != "" {
			sectionEnd[section] = len(out)
		}
	}
	if firstHeader < 0 {
		firstHeader = len(out)
	}

	// Group missing options by the line index they are inserted before.
	inserts := make(map[int][]string)
	var fresh []ConfigOption
	for _, o := range opts {
		if seen[o.Key] {
			continue
		}
		changed = true
		sec, key, dotted := strings.Cut(o.Key, ".")
		switch {
		case !dotted:
			inserts[firstHeader] = appendAdded(inserts[firstHeader], optionLines(o.Key, o))
		case sectionEnd[sec] > 0:
			at := sectionEnd[sec]
			inserts[at] = appendAdded(inserts[at], optionLines(key, o))
		default:
			fresh = append(fresh, o)
		}
	}
	if !changed {
		return existing, false
	}

	merged := make([]string, 0, len(out)+4*len(opts))
	for i := 0; i <= len(out); i++ {
		merged = append(merged, inserts[i]...)
		if i < len(out) {
			merged = append(merged, out[i])
		}
	}
	if len(fresh) > 0 {
		merged = append(merged, "", "# Added by config update")
		merged = append(merged, renderOptions(fresh)...)
	}
	return strings.Join(merged, "\n"), true
}

func appendAdded(group, lines []string) []string {
	if len(group) == 0 {
		group = append(group, "# Added by config update")
	}
	return append(group, lines...)
}

// renderOptions emits top-level keys first, then one table per dotted prefix
// in first-seen order.
func renderOptions(opts []ConfigOption) []string {
	var out []string
	sections := make(map[string][]ConfigOption)
	var order []string
	for _, o := range opts {
		section, key, dotted := strings.Cut(o.Key, ".")
		if !dotted {
			out = append(out, optionLines(o.Key, o)...)
			continue
		}
		if _, ok := sections[section]; !ok {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	for _, section := range order {
		out = append(out, "["+section+"]")
		for _, o := range sections[section] {
			out = append(out, optionLines(o.Key, o)...)
		}
	}
	return out
}

func optionLines(key string, o ConfigOption) []string {
	var lines []string
	if o.Comment != "" {
		lines = append(lines, "# "+o.Comment)
	}
	switch v := o.Default.(type) {
	case string:
		lines = append(lines, fmt.Sprintf("%s = %q", key, v))
	default:
		lines = append(lines, fmt.Sprintf("%s = %v", key, v))
	}
	return append(lines, "")
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}
