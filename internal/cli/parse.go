package cli

import (
	"strconv"
	"strings"
)

// parseOperand converts user text to an int64 or float64. Text that is not a
// number is returned unchanged as a string.
func parseOperand(text string) any {
	text = strings.TrimSpace(text)

	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	return text
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOperands(operands []any) string {
	parts := make([]string, len(operands))
	for i, op := range operands {
		switch v := op.(type) {
		case int64:
			parts[i] = strconv.FormatInt(v, 10)
		case float64:
			parts[i] = formatResult(v)
		case string:
			parts[i] = strconv.Quote(v)
		}
	}
	return strings.Join(parts, ", ")
}
