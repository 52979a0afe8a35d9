// Package transform converts raw cell values into the canonical string form
// a field's target type demands. Every function returns the value ready for
// XML emission; nothing here writes XML.
package transform

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"mariosat/mifir-mapper/internal/dateutils"
	"mariosat/mifir-mapper/internal/mapperror"
	"mariosat/mifir-mapper/internal/models"
)

// Apply transforms a raw cell value according to the field definition.
// Empty input passes through as empty: whether an empty value is acceptable
// is a validation concern, not a transformation one.
func Apply(def models.FieldDefinition, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}

	var out string
	var err error
	switch def.Type {
	case models.TypeString:
		out = applyString(def, value)
	case models.TypeDate:
		out, err = applyDate(value)
	case models.TypeDateTime:
		out, err = applyDateTime(value)
	case models.TypeDecimal:
		out, err = applyDecimal(value)
	case models.TypeInteger:
		out, err = applyInteger(value)
	case models.TypeBoolean:
		out, err = applyBoolean(value)
	case models.TypeEnum:
		return applyEnum(def, value)
	default:
		err = fmt.Errorf("unhandled data type %q", def.Type)
	}
	if err != nil {
		return "", &mapperror.TransformError{Field: def.Name, Value: raw, Type: string(def.Type), Err: err}
	}

	if def.Type == models.TypeString && !def.AlnumOnly && def.MaxLen > 0 && len(out) > def.MaxLen {
		return "", &mapperror.TransformError{
			Field: def.Name, Value: raw, Type: string(def.Type),
			Err: fmt.Errorf("value exceeds maximum length %d", def.MaxLen),
		}
	}
	return out, nil
}

// applyString normalizes case and, for sanitizing fields like the transaction
// identifier, strips non-alphanumeric characters and truncates to the
// schema's length cap.
func applyString(def models.FieldDefinition, value string) string {
	value = applyCase(def.Case, value)
	if def.AlnumOnly {
		var b strings.Builder
		b.Grow(len(value))
		for _, r := range value {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		value = b.String()
		if def.MaxLen > 0 && len(value) > def.MaxLen {
			value = value[:def.MaxLen]
		}
	}
	return value
}

func applyCase(c models.CaseTransform, value string) string {
	switch c {
	case models.CaseUpper:
		return strings.ToUpper(value)
	case models.CaseLower:
		return strings.ToLower(value)
	}
	return value
}

func applyDate(value string) (string, error) {
	t, _, err := dateutils.ParseDate(value)
	if err != nil {
		return "", err
	}
	return dateutils.ToISODate(t), nil
}

func applyDateTime(value string) (string, error) {
	// Date-only input still yields a full timestamp at midnight UTC.
	t, _, err := dateutils.ParseDate(value)
	if err != nil {
		return "", err
	}
	return dateutils.ToISODateTime(t), nil
}

// normalizeNumber strips grouping characters and unifies the decimal
// separator so that both "1,234.56" and "1.234,56" parse.
func normalizeNumber(value string) string {
	v := strings.ReplaceAll(value, " ", "")
	v = strings.ReplaceAll(v, "'", "")

	lastComma := strings.LastIndex(v, ",")
	lastDot := strings.LastIndex(v, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		// The rightmost separator is the decimal point.
		if lastComma > lastDot {
			v = strings.ReplaceAll(v, ".", "")
			v = strings.Replace(v, ",", ".", 1)
		} else {
			v = strings.ReplaceAll(v, ",", "")
		}
	case strings.Count(v, ",") == 1:
		// A lone comma followed by exactly three digits reads as a
		// thousands separator ("1,000"), otherwise as a decimal comma.
		if frac := v[lastComma+1:]; len(frac) == 3 && allDigits(frac) {
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.Replace(v, ",", ".", 1)
		}
	case lastComma >= 0:
		v = strings.ReplaceAll(v, ",", "")
	}
	return v
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func applyDecimal(value string) (string, error) {
	dec, err := decimal.NewFromString(normalizeNumber(value))
	if err != nil {
		return "", fmt.Errorf("not a valid decimal")
	}
	return dec.String(), nil
}

func applyInteger(value string) (string, error) {
	dec, err := decimal.NewFromString(normalizeNumber(value))
	if err != nil {
		return "", fmt.Errorf("not a valid integer")
	}
	if !dec.IsInteger() {
		return "", fmt.Errorf("not a whole number")
	}
	return dec.String(), nil
}

var booleanForms = map[string]string{
	"true": "true", "t": "true", "yes": "true", "y": "true", "1": "true",
	"false": "false", "f": "false", "no": "false", "n": "false", "0": "false",
}

func applyBoolean(value string) (string, error) {
	out, ok := booleanForms[strings.ToLower(value)]
	if !ok {
		return "", fmt.Errorf("not a recognized boolean")
	}
	return out, nil
}

// applyEnum normalizes case and checks membership. Out-of-domain values are
// rejected, never coerced to a default.
func applyEnum(def models.FieldDefinition, value string) (string, error) {
	value = applyCase(def.Case, value)
	for _, allowed := range def.EnumValues {
		if value == allowed {
			return value, nil
		}
	}
	return "", &mapperror.EnumViolationError{Field: def.Name, Value: value, Allowed: def.EnumValues}
}
