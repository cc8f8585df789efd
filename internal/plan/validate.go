package plan

import (
	"strings"
)

// illegalChars are forbidden in filenames on Windows; the set is enforced on
// every platform so renamed trees stay portable.
const illegalChars = `<>:"/\|?*`

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// invalidNameReason returns a human-readable reason when name cannot be used
// as a filename, or "" when it is acceptable.
func invalidNameReason(name string) string {
	trim := strings.TrimSpace(name)
	if trim == "" {
		return "empty name"
	}
	if strings.ContainsAny(trim, illegalChars) {
		return "illegal characters"
	}
	for _, r := range trim {
		if r < 0x20 || r == 0x7f {
			return "control characters"
		}
	}
	base := trim
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if reservedNames[strings.ToUpper(base)] {
		return "reserved filename"
	}
	return ""
}
