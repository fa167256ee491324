package uidump

import (
	"regexp"
	"strconv"
	"strings"
)

// uiautomator dumps escape attribute values with the five XML entities plus
// numeric character references. Anything else markup-like is stripped.
var entityPattern = regexp.MustCompile(`&(#[0-9A-Za-z]*|[A-Za-z][A-Za-z0-9]*);`)

var namedEntities = map[string]string{
	"quot": `"`,
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"apos": "'",
}

// DecodeEntities replaces recognized XML entities in s with their literal
// characters. Unrecognized named entities and malformed numeric references
// decode to the empty string. The function never fails; input without an
// ampersand is returned unchanged.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	return entityPattern.ReplaceAllStringFunc(s, func(m string) string {
		body := m[1 : len(m)-1]

		if strings.HasPrefix(body, "#") {
			var n int64
			var err error
			if strings.HasPrefix(body, "#x") || strings.HasPrefix(body, "#X") {
				n, err = strconv.ParseInt(body[2:], 16, 32)
			} else {
				n, err = strconv.ParseInt(body[1:], 10, 32)
			}
			if err != nil || n < 0 {
				return ""
			}
			return string(rune(n))
		}

		if literal, ok := namedEntities[body]; ok {
			return literal
		}
		return ""
	})
}
