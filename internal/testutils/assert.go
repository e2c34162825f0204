package testutils

import (
	"fmt"
	"strings"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func MustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

func Ignore(err error) {
	if err != nil {
		fmt.Printf("Error ignored: %v\n", err) // nolint:forbidigo
	}
}

// Lines splits command output into trimmed non-empty lines.
func Lines(output string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
