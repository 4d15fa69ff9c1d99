// Package validation implements the registration form rules: the CPF
// checksum, the age gate, the input masks and the dispatcher that runs
// a field's rules in order.
//
// Each rule is a custom tag registered on a go-playground/validator
// instance. The dispatcher calls validate.Var once per rule so it can
// stop at the first failure and report exactly one message per field.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aanand-mishra/ong-site/internal/i18n"
	"github.com/go-playground/validator/v10"
)

// Rule names a validation predicate applied to one form field.
type Rule string

const (
	RuleRequired Rule = "required"
	RuleEmail    Rule = "email"
	RuleAge      Rule = "age"
	RuleCPF      Rule = "cpf"
	RulePhone    Rule = "phone"
	RuleCEP      Rule = "cep"
)

// Thresholds used by the rules.
const (
	MinimumAge       = 18
	MinPhoneDigits   = 10
	MaxPhoneDigits   = 11
	CEPDigits        = 8
	BirthDateLayout  = "2006-01-02"
	emailShapeRegexp = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)

// validator tags backing each rule. "required" is reserved by the
// validator package, hence "filled".
var ruleTags = map[Rule]string{
	RuleRequired: "filled",
	RuleEmail:    "emailshape",
	RuleAge:      "adult",
	RuleCPF:      "cpf",
	RulePhone:    "phone",
	RuleCEP:      "cep",
}

// ruleMessages maps each rule to the i18n key of its failure message.
var ruleMessages = map[Rule]string{
	RuleRequired: i18n.KeyRequired,
	RuleEmail:    i18n.KeyEmail,
	RuleAge:      i18n.KeyAge,
	RuleCPF:      i18n.KeyCPF,
	RulePhone:    i18n.KeyPhone,
	RuleCEP:      i18n.KeyCEP,
}

var emailShape = regexp.MustCompile(emailShapeRegexp)

// Field is one entry of the rule table.
type Field struct {
	Name  string
	Rules []Rule
}

// RegistrationFields is the rule table of the volunteer form, in the
// order fields are validated and reported.
var RegistrationFields = []Field{
	{Name: "nome", Rules: []Rule{RuleRequired}},
	{Name: "email", Rules: []Rule{RuleRequired, RuleEmail}},
	{Name: "nascimento", Rules: []Rule{RuleRequired, RuleAge}},
	{Name: "cpf", Rules: []Rule{RuleRequired, RuleCPF}},
	{Name: "telefone", Rules: []Rule{RuleRequired, RulePhone}},
	{Name: "cep", Rules: []Rule{RuleRequired, RuleCEP}},
	{Name: "endereco", Rules: []Rule{RuleRequired}},
	{Name: "bairro", Rules: []Rule{RuleRequired}},
	{Name: "cidade", Rules: []Rule{RuleRequired}},
	{Name: "estado", Rules: []Rule{RuleRequired}},
}

// Masks applied to raw input before validation, keyed by field name.
var fieldMasks = map[string]func(string) string{
	"cpf":      MaskCPF,
	"telefone": MaskPhone,
	"cep":      MaskCEP,
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

// Validator runs the rule table. The zero value is not usable; build one
// with New.
type Validator struct {
	validate *validator.Validate
	now      Clock
	fields   []Field
}

// New builds a Validator for the registration rule table. A nil clock
// means time.Now.
func New(now Clock) (*Validator, error) {
	if now == nil {
		now = time.Now
	}

	v := &Validator{
		validate: validator.New(),
		now:      now,
		fields:   RegistrationFields,
	}

	checks := map[string]validator.Func{
		"filled": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"emailshape": func(fl validator.FieldLevel) bool {
			return emailShape.MatchString(fl.Field().String())
		},
		"adult": func(fl validator.FieldLevel) bool {
			return IsAdult(fl.Field().String(), v.now())
		},
		"cpf": func(fl validator.FieldLevel) bool {
			return IsValidCPF(fl.Field().String())
		},
		"phone": func(fl validator.FieldLevel) bool {
			n := len(Digits(fl.Field().String()))
			return n >= MinPhoneDigits && n <= MaxPhoneDigits
		},
		"cep": func(fl validator.FieldLevel) bool {
			return len(Digits(fl.Field().String())) == CEPDigits
		},
	}

	for tag, fn := range checks {
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("validation.New: register %q: %w", tag, err)
		}
	}

	return v, nil
}

// Fields returns the rule table this validator applies.
func (v *Validator) Fields() []Field {
	return v.fields
}

// Lookup returns the rules for a field name.
func (v *Validator) Lookup(name string) (Field, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Check applies rules to value in order and stops at the first failure.
//
// It returns the failing rule and true, or "" and false when every rule
// passed. Unknown rule names are ignored.
// ─────────────────────────────────────────────────────────────────────────────
func (v *Validator) Check(value string, rules []Rule) (Rule, bool) {
	for _, rule := range rules {
		tag, ok := ruleTags[rule]
		if !ok {
			continue
		}
		if err := v.validate.Var(value, tag); err != nil {
			return rule, true
		}
	}
	return "", false
}

// Field validates one value and returns the i18n key of the failure
// message, or "" when the value is valid.
func (v *Validator) Field(value string, rules []Rule) string {
	rule, failed := v.Check(value, rules)
	if !failed {
		return ""
	}
	return ruleMessages[rule]
}

// FieldError is one failing field of a form.
type FieldError struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// Result is the outcome of validating a whole form. Values holds the
// masked input so it can be echoed back to the user.
type Result struct {
	Values map[string]string
	Errors []FieldError
}

// Valid reports whether no field failed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// ErrorFor returns the message key for field, or "".
func (r Result) ErrorFor(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Form masks and validates every field of the rule table. Fields missing
// from values are treated as empty.
func (v *Validator) Form(values map[string]string) Result {
	return v.validateFields(values, v.fields)
}

// Partial validates only the fields present in values; used for live
// feedback while the user is still typing.
func (v *Validator) Partial(values map[string]string) Result {
	fields := make([]Field, 0, len(values))
	for _, f := range v.fields {
		if _, ok := values[f.Name]; ok {
			fields = append(fields, f)
		}
	}
	return v.validateFields(values, fields)
}

func (v *Validator) validateFields(values map[string]string, fields []Field) Result {
	result := Result{Values: make(map[string]string, len(fields))}

	for _, f := range fields {
		value := Mask(f.Name, values[f.Name])
		result.Values[f.Name] = value

		if rule, failed := v.Check(value, f.Rules); failed {
			result.Errors = append(result.Errors, FieldError{
				Field:   f.Name,
				Rule:    rule,
				Message: ruleMessages[rule],
			})
		}
	}

	return result
}

// Mask applies the input mask registered for field, if any.
func Mask(field, value string) string {
	if mask, ok := fieldMasks[field]; ok {
		return mask(value)
	}
	return value
}
