package format

import "fmt"

// ScientificVerb is the printf verb used for every reported sum: a sign
// column (space for positive values, '-' for negative ones), three mantissa
// digits and at least two exponent digits, left-justified in six columns.
const ScientificVerb = "% -6.3e"

// FormatScientific renders v with ScientificVerb, e.g. "-1.235e-04" or
// " 3.210e-05".
func FormatScientific(v float64) string {
	return fmt.Sprintf(ScientificVerb, v)
}
