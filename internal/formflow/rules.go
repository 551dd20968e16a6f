package formflow

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// FieldType declares how a field's value is interpreted before range and
// pattern checks run.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldEmail  FieldType = "email"
	FieldURL    FieldType = "url"
)

// Rule declares the constraints for one field path. Zero-value Rule accepts
// anything.
type Rule struct {
	Required  bool
	Type      FieldType
	Min       *float64
	Max       *float64
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp

	// Label overrides the field path in messages; messages fall back to a
	// generic phrasing when empty.
	Label string
}

// CheckField validates a single value against a rule and returns at most one
// message. The most fundamental violation wins:
// required-but-missing > type mismatch > out-of-range / out-of-length /
// pattern. The empty string means the value passes.
func CheckField(value any, rule Rule) string {
	if isEmptyValue(value) {
		if rule.Required {
			return "required"
		}
		return ""
	}

	switch rule.Type {
	case FieldNumber:
		n, ok := asNumber(value)
		if !ok {
			return "must be a number"
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Sprintf("must be at least %s", trimFloat(*rule.Min))
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Sprintf("must be at most %s", trimFloat(*rule.Max))
		}
		return ""

	case FieldEmail:
		s, ok := value.(string)
		if !ok {
			return "must be text"
		}
		if _, err := mail.ParseAddress(strings.TrimSpace(s)); err != nil {
			return "must be a valid email address"
		}

	case FieldURL:
		s, ok := value.(string)
		if !ok {
			return "must be text"
		}
		u, err := url.Parse(strings.TrimSpace(s))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "must be a valid URL"
		}

	default: // FieldText and untyped
		if _, ok := value.(string); !ok {
			if _, numeric := asNumber(value); !numeric {
				if _, isBool := value.(bool); !isBool {
					return "must be text"
				}
			}
		}
	}

	if s, ok := value.(string); ok {
		trimmed := strings.TrimSpace(s)
		if rule.MinLength != nil && len(trimmed) < *rule.MinLength {
			return fmt.Sprintf("must be at least %d characters", *rule.MinLength)
		}
		if rule.MaxLength != nil && len(trimmed) > *rule.MaxLength {
			return fmt.Sprintf("must be at most %d characters", *rule.MaxLength)
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(trimmed) {
			return "has an invalid format"
		}
	}

	return ""
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// Float is a convenience for building Rule bounds inline.
func Float(f float64) *float64 { return &f }

// Int is a convenience for building Rule lengths inline.
func Int(i int) *int { return &i }
