package catalog

import "strings"

// SplitList turns comma-separated input into a trimmed list with empty segments dropped.
// "React, TypeScript,  Node.js" yields [React TypeScript Node.js].
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList is the inverse used to pre-fill a form field.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
