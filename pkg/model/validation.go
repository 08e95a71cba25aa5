package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Notice is a user-facing validation message for a single field. Notices
// never block rendering; the offending value degrades to its default.
type Notice struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (n Notice) String() string {
	return n.Field + ": " + n.Message
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func contactValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("accent", func(fl validator.FieldLevel) bool {
			return IsHexColor(strings.TrimSpace(fl.Field().String()))
		})
		_ = v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
			return looksLikeWebAddress(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks field formats and returns one notice per failing field,
// ordered by form position. A nil slice means the contact is clean.
func (c ContactData) Validate() []Notice {
	err := contactValidator().Struct(c.Trimmed())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Notice{{Field: "form", Message: err.Error()}}
	}

	byField := make(map[string]Notice, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := byField[fe.Field()]; seen {
			continue
		}
		byField[fe.Field()] = Notice{Field: fe.Field(), Message: noticeMessage(fe)}
	}

	notices := make([]Notice, 0, len(byField))
	for _, key := range FieldKeys() {
		if notice, ok := byField[key]; ok {
			notices = append(notices, notice)
		}
	}
	return notices
}

func noticeMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "email":
		return fmt.Sprintf("Please enter a valid %s", label)
	case "accent":
		return "Color must be a hex value like #1A2B3C"
	case "weburl":
		return fmt.Sprintf("Please enter a valid %s", label)
	case "required_with":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s is too long", label)
	default:
		return fmt.Sprintf("Please check your %s", label)
	}
}

// fieldLabel turns a camelCase key into a capitalised label ("firstName" →
// "First Name").
func fieldLabel(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func looksLikeWebAddress(raw string) bool {
	value := strings.TrimSpace(raw)
	if value == "" || len(value) > 2048 {
		return false
	}
	if strings.ContainsAny(value, " \t\r\n<>\"") {
		return false
	}
	lower := strings.ToLower(value)
	for _, prefix := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, prefix) {
			value = value[len(prefix):]
			break
		}
	}
	host := value
	if idx := strings.IndexAny(host, "/?#"); idx >= 0 {
		host = host[:idx]
	}
	return strings.Contains(host, ".") && !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}
