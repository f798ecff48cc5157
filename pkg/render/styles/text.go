package styles

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

// EscapeXML escapes s for use as SVG text content or attribute value.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Num formats a coordinate with as few digits as needed: 50, 52.5, 0.1.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
