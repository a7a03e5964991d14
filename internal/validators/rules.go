// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// typeName names the JSON type of v the way the error messages refer to it.
func typeName(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		if math.IsNaN(t) {
			return "nan"
		}
		return "number"
	case int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// String accepts a string, optionally trimmed, whose length in characters
// lies in [minLen, maxLen]. A negative bound is not checked.
func String(trim bool, minLen, maxLen int) Rule {
	return func(value any) (any, string) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Sprintf("Expected string, received %s", typeName(value))
		}
		if trim {
			s = strings.TrimSpace(s)
		}

		n := utf8.RuneCountInString(s)
		if minLen >= 0 && n < minLen {
			return nil, fmt.Sprintf("String must contain at least %d character(s)", minLen)
		}
		if maxLen >= 0 && n > maxLen {
			return nil, fmt.Sprintf("String must contain at most %d character(s)", maxLen)
		}

		return s, ""
	}
}

// Matches rejects strings that do not match re with message.
func Matches(re *regexp.Regexp, message string) Rule {
	return func(value any) (any, string) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Sprintf("Expected string, received %s", typeName(value))
		}
		if !re.MatchString(s) {
			return nil, message
		}
		return s, ""
	}
}

// OneOf accepts one of allowed.
func OneOf(allowed ...string) Rule {
	return func(value any) (any, string) {
		s, ok := value.(string)
		if ok {
			for _, a := range allowed {
				if s == a {
					return s, ""
				}
			}
		}

		quoted := make([]string, 0, len(allowed))
		for _, a := range allowed {
			quoted = append(quoted, "'"+a+"'")
		}
		received := typeName(value)
		if ok {
			received = "'" + s + "'"
		}

		return nil, fmt.Sprintf("Invalid enum value. Expected %s, received %s", strings.Join(quoted, " | "), received)
	}
}

// Integer accepts a whole number, coercing numeric strings, within
// [minVal, maxVal]. A nil bound is not checked, but the value must always fit
// a 32-bit integer column. The result is an int.
func Integer(minVal, maxVal *int) Rule {
	return func(value any) (any, string) {
		var f float64
		switch v := value.(type) {
		case float64:
			f = v
		case int:
			f = float64(v)
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || strings.TrimSpace(v) == "" {
				return nil, "Expected number, received nan"
			}
			f = parsed
		default:
			return nil, fmt.Sprintf("Expected number, received %s", typeName(value))
		}

		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, "Expected number, received nan"
		}
		if f != math.Trunc(f) {
			return nil, "Expected integer, received float"
		}
		if minVal != nil && f < float64(*minVal) {
			return nil, fmt.Sprintf("Number must be greater than or equal to %d", *minVal)
		}
		if maxVal != nil && f > float64(*maxVal) {
			return nil, fmt.Sprintf("Number must be less than or equal to %d", *maxVal)
		}
		if f < math.MinInt32 {
			return nil, fmt.Sprintf("Number must be greater than or equal to %d", math.MinInt32)
		}
		if f > math.MaxInt32 {
			return nil, fmt.Sprintf("Number must be less than or equal to %d", math.MaxInt32)
		}

		return int(f), ""
	}
}

// Boolish accepts a boolean or the strings "true" and "false" in any case.
func Boolish() Rule {
	return func(value any) (any, string) {
		switch v := value.(type) {
		case bool:
			return v, ""
		case string:
			switch strings.ToLower(v) {
			case "true":
				return true, ""
			case "false":
				return false, ""
			}
			return nil, "Invalid boolean value"
		default:
			return nil, fmt.Sprintf("Expected boolean, received %s", typeName(value))
		}
	}
}

// Bound is a helper for the optional bounds of [Integer].
func Bound(n int) *int {
	return &n
}
