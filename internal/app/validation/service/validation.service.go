package validation_service

import (
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/init-pkg/excel-users/domain/app"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
)

type ValidationService struct {
	constraints []app.Constraint
	validate    *validator.Validate
	log         *slog.Logger
}

var _ app.FieldValidator = &ValidationService{}

func New(log *slog.Logger) *ValidationService {
	return NewWithConstraints(UserConstraints, log)
}

func NewWithConstraints(constraints []app.Constraint, log *slog.Logger) *ValidationService {
	return &ValidationService{
		constraints: constraints,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		log:         log,
	}
}

// Validate evaluates every column, so one row can report several problems.
// Values are checked exactly as they will be persisted. A missing or blank
// column reports only its presence rule; the rest of that column's rules
// are skipped.
func (this *ValidationService) Validate(row app.Row) []string {
	var messages []string

	for _, c := range this.constraints {
		value, ok := row[c.Column]
		blank := !ok || value.IsBlank()
		text := value.String()

		for _, rule := range c.Rules {
			if rule.Kind == app.RuleRequired {
				if blank {
					messages = append(messages, c.Label+" "+rule.Reason)
					break
				}
				continue
			}
			if blank {
				continue
			}
			if !this.passes(rule, text) {
				messages = append(messages, c.Label+" "+rule.Reason)
			}
		}
	}

	return messages
}

func (this *ValidationService) passes(rule app.Rule, text string) bool {
	switch rule.Kind {
	case app.RuleMinLength:
		return utf8.RuneCountInString(text) >= rule.Length
	case app.RuleExactLength:
		return utf8.RuneCountInString(text) == rule.Length
	case app.RulePattern:
		return rule.Pattern.MatchString(text)
	case app.RuleOneOf:
		return slices.Contains(rule.Values, text)
	case app.RuleEmail:
		return this.isEmail(text)
	default:
		this.log.Warn("unknown validation rule", "kind", rule.Kind)
		return true
	}
}

func (this *ValidationService) isEmail(text string) bool {
	if err := this.validate.Var(text, "email"); err != nil {
		return false
	}
	at := strings.LastIndexByte(text, '@')
	return at > 0 && strings.Contains(text[at+1:], ".")
}

// Template returns the JSON Schema of one upload row.
func Template() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	return reflector.Reflect(&UploadTemplate{})
}
