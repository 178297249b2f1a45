package fsutils

import "strconv"

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// ShortSize returns a human readable size, rounded to the nearest unit.
func ShortSize(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < len(sizeUnits)-1; n /= unit {
		div *= unit
		exp++
	}
	val := (size + div/2) / div
	// rounding may carry into the next unit
	if val >= unit && exp < len(sizeUnits)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}
