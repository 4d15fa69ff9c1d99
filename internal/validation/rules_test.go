package validation

import (
	"testing"
	"time"

	"github.com/aanand-mishra/ong-site/internal/i18n"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(func() time.Time { return fixedNow })
	require.NoError(t, err)
	return v
}

func validForm() map[string]string {
	return map[string]string{
		"nome":       "Maria da Silva",
		"email":      "maria@example.org",
		"nascimento": "1990-05-12",
		"cpf":        "11144477735",
		"telefone":   "11987654321",
		"cep":        "01310100",
		"endereco":   "Avenida Paulista",
		"bairro":     "Bela Vista",
		"cidade":     "São Paulo",
		"estado":     "SP",
	}
}

func TestFieldShortCircuitsOnFirstFailure(t *testing.T) {
	v := newTestValidator(t)

	assert.Equal(t, i18n.KeyRequired, v.Field("   ", []Rule{RuleRequired, RuleEmail}))
	assert.Equal(t, i18n.KeyEmail, v.Field("maria@", []Rule{RuleRequired, RuleEmail}))
	assert.Equal(t, "", v.Field("maria@example.org", []Rule{RuleRequired, RuleEmail}))
}

func TestCheckRules(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name   string
		value  string
		rule   Rule
		failed bool
	}{
		{"required blank", " \t", RuleRequired, true},
		{"required filled", "x", RuleRequired, false},
		{"email no at", "maria.example.org", RuleEmail, true},
		{"email no dot in domain", "maria@example", RuleEmail, true},
		{"email with space", "ma ria@example.org", RuleEmail, true},
		{"email ok", "a@b.co", RuleEmail, false},
		{"age adult", "1990-01-01", RuleAge, false},
		{"age minor", "2015-01-01", RuleAge, true},
		{"age garbage", "12/05/1990", RuleAge, true},
		{"cpf valid", "111.444.777-35", RuleCPF, false},
		{"cpf repeated", "111.111.111-11", RuleCPF, true},
		{"phone short", "(11) 9876-543", RulePhone, true},
		{"phone landline", "(11) 3456-7890", RulePhone, false},
		{"phone mobile", "(11) 98765-4321", RulePhone, false},
		{"phone too long", "(11) 98765-43219", RulePhone, true},
		{"cep short", "0131-010", RuleCEP, true},
		{"cep ok", "01310-100", RuleCEP, false},
		{"cep too long", "01310-1009", RuleCEP, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, failed := v.Check(tt.value, []Rule{tt.rule})
			assert.Equal(t, tt.failed, failed)
			if tt.failed {
				assert.Equal(t, tt.rule, rule)
			}
		})
	}
}

func TestCheckIgnoresUnknownRules(t *testing.T) {
	v := newTestValidator(t)

	_, failed := v.Check("", []Rule{"nonexistent"})
	assert.False(t, failed)
}

func TestFormValid(t *testing.T) {
	v := newTestValidator(t)

	result := v.Form(validForm())
	require.True(t, result.Valid(), "unexpected errors: %+v", result.Errors)

	assert.Equal(t, "111.444.777-35", result.Values["cpf"])
	assert.Equal(t, "(11) 98765-4321", result.Values["telefone"])
	assert.Equal(t, "01310-100", result.Values["cep"])
}

func TestFormReportsOneMessagePerFieldInTableOrder(t *testing.T) {
	v := newTestValidator(t)

	values := validForm()
	values["email"] = ""
	values["cpf"] = "123.456.789-00"
	values["nascimento"] = "2010-01-01"
	delete(values, "estado")

	result := v.Form(values)
	require.False(t, result.Valid())

	want := []FieldError{
		{Field: "email", Rule: RuleRequired, Message: i18n.KeyRequired},
		{Field: "nascimento", Rule: RuleAge, Message: i18n.KeyAge},
		{Field: "cpf", Rule: RuleCPF, Message: i18n.KeyCPF},
		{Field: "estado", Rule: RuleRequired, Message: i18n.KeyRequired},
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, i18n.KeyCPF, result.ErrorFor("cpf"))
	assert.Equal(t, "", result.ErrorFor("nome"))
}

func TestPartialOnlyChecksGivenFields(t *testing.T) {
	v := newTestValidator(t)

	result := v.Partial(map[string]string{"cpf": "111.111.111-11"})
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "cpf", result.Errors[0].Field)
	assert.Len(t, result.Values, 1)
}

func TestOverlongInputIsRejectedNotTruncated(t *testing.T) {
	v := newTestValidator(t)

	result := v.Partial(map[string]string{
		"cpf":      "111.444.777-3599",
		"cep":      "01310-1009",
		"telefone": "(11) 98765-43219999",
	})

	want := []FieldError{
		{Field: "cpf", Rule: RuleCPF, Message: i18n.KeyCPF},
		{Field: "telefone", Rule: RulePhone, Message: i18n.KeyPhone},
		{Field: "cep", Rule: RuleCEP, Message: i18n.KeyCEP},
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "1114447773599", Digits(result.Values["cpf"]))
	assert.Equal(t, "013101009", Digits(result.Values["cep"]))
	assert.NotEqual(t, "01310-100", result.Values["cep"])
}

func TestLookup(t *testing.T) {
	v := newTestValidator(t)

	field, ok := v.Lookup("cpf")
	require.True(t, ok)
	assert.Equal(t, []Rule{RuleRequired, RuleCPF}, field.Rules)

	_, ok = v.Lookup("unknown")
	assert.False(t, ok)
}
