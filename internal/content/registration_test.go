package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFormEmpty(t *testing.T) {
	html, err := RegistrationForm(FormView{})
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, `id="cadastro-form"`)
	for _, name := range []string{"nome", "email", "nascimento", "cpf", "telefone", "cep", "endereco", "bairro", "cidade", "estado"} {
		assert.Contains(t, page, `name="`+name+`"`, "missing input %s", name)
	}
	assert.NotContains(t, page, "invalid")
	assert.Contains(t, page, `data-cep-error="Erro ao buscar CEP."`)
}

func TestRegistrationFormKeepsValuesAndErrors(t *testing.T) {
	html, err := RegistrationForm(FormView{
		Values:    map[string]string{"nome": `Ana "Zé"`, "cpf": "123.456.789-00"},
		Errors:    map[string]string{"cpf": "CPF inválido. Verifique os dígitos."},
		Submitted: true,
	})
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, `value="123.456.789-00"`)
	assert.Contains(t, page, "CPF inválido. Verifique os dígitos.")
	assert.Contains(t, page, `value="Ana &#34;Zé&#34;"`)
	assert.Equal(t, 2, strings.Count(page, "form-control valid")+strings.Count(page, "form-control invalid"))
}

func TestFormViewState(t *testing.T) {
	view := FormView{
		Values:    map[string]string{"nome": "Ana", "email": " "},
		Errors:    map[string]string{"cpf": "x"},
		Submitted: true,
	}

	assert.Equal(t, "valid", view.State("nome"))
	assert.Equal(t, "", view.State("email"))
	assert.Equal(t, "invalid", view.State("cpf"))
	assert.Equal(t, "", FormView{Values: map[string]string{"nome": "Ana"}}.State("nome"))
}
