package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

var registrationTemplate = template.Must(
	template.New("cadastro.html").
		Funcs(template.FuncMap{"input": newInputView}).
		ParseFS(templateFS, "templates/cadastro.html"),
)

// FormView is the state the volunteer form is rendered with: the values
// to put back in the inputs and the already translated error message of
// each failing field. The zero value renders an empty form.
type FormView struct {
	Values    map[string]string
	Errors    map[string]string
	Submitted bool
}

// Value returns the current value of field.
func (f FormView) Value(field string) string {
	return f.Values[field]
}

// Error returns the error message of field, or "".
func (f FormView) Error(field string) string {
	return f.Errors[field]
}

// State is the validation class of field's input: "invalid" when it has
// an error, "valid" when the form was checked and the field is filled,
// "" otherwise.
func (f FormView) State(field string) string {
	if f.Errors[field] != "" {
		return "invalid"
	}
	if f.Submitted && strings.TrimSpace(f.Values[field]) != "" {
		return "valid"
	}
	return ""
}

// inputView feeds the "field" partial of the form template.
type inputView struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	MaxLength   int
	Value       string
	Error       string
	State       string
}

func newInputView(f FormView, name, label, typ, placeholder string, maxLength int) inputView {
	return inputView{
		Name:        name,
		Label:       label,
		Type:        typ,
		Placeholder: placeholder,
		MaxLength:   maxLength,
		Value:       f.Value(name),
		Error:       f.Error(name),
		State:       f.State(name),
	}
}

// RegistrationForm renders the volunteer form.
func RegistrationForm(view FormView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := registrationTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("content.RegistrationForm: %w", err)
	}
	return template.HTML(buf.String()), nil
}
