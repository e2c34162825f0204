package logging

import (
	"strconv"
	"strings"
)

// ShortCallerFormatter trims the caller path down to the file name, e.g. table.go:42
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}
	return file + ":" + strconv.Itoa(line)
}
