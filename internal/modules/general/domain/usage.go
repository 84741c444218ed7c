package domain

import (
	"fmt"
	"strings"
)

// CommandUsage is how often a command has been invoked.
type CommandUsage struct {
	Name  string
	Count uint64
}

// UsageReport renders usage as one "- name: count" line per command, in the
// order given.
func UsageReport(usage []CommandUsage) string {
	if len(usage) == 0 {
		return "No commands have been used yet."
	}

	var b strings.Builder
	b.WriteString("Commands used:")
	for _, u := range usage {
		fmt.Fprintf(&b, "\n- %s: %d", u.Name, u.Count)
	}
	return b.String()
}
