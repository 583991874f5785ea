package pattern

import (
	"fmt"
	"strconv"
)

// MonthNames is the canonical style table used when comparing a VIRIN date
// against the date written in a description. The mixed abbreviation style
// (March through July spelled out, the rest abbreviated) follows the
// captioning style guide and must be preserved exactly.
var MonthNames = [12]string{
	"Jan.", "Feb.", "March", "April", "May", "June",
	"July", "Aug.", "Sep.", "Oct.", "Nov.", "Dec.",
}

// FormatVirinDate renders the YYMMDD prefix of a VIRIN in canonical caption
// style, e.g. "250101-A-AB123-0001" becomes "Jan. 1, 2025". ok is false
// when the prefix is not a plausible calendar date.
func FormatVirinDate(virin string) (string, bool) {
	if len(virin) < 6 {
		return "", false
	}
	yy, err := strconv.Atoi(virin[0:2])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(virin[2:4])
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	day, err := strconv.Atoi(virin[4:6])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%s %d, %d", MonthNames[month-1], day, 2000+yy), true
}
