// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles:
// handlers, storage, content and the address client can all import
// types without depending on each other.
package types

import "time"

// Volunteer is a stored registration from the volunteer form.
//
// The json tags use the form's own field names so the JSON API and the
// HTML form accept the same keys.
type Volunteer struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	BirthDate string    `json:"nascimento"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"telefone"`
	CEP       string    `json:"cep"`
	Street    string    `json:"endereco"`
	District  string    `json:"bairro"`
	City      string    `json:"cidade"`
	State     string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

// FormValues returns v as the field-name → value map the validator
// works on.
func (v Volunteer) FormValues() map[string]string {
	return map[string]string{
		"nome":       v.Name,
		"email":      v.Email,
		"nascimento": v.BirthDate,
		"cpf":        v.CPF,
		"telefone":   v.Phone,
		"cep":        v.CEP,
		"endereco":   v.Street,
		"bairro":     v.District,
		"cidade":     v.City,
		"estado":     v.State,
	}
}

// VolunteerFromForm builds a Volunteer from validated form values.
func VolunteerFromForm(values map[string]string) Volunteer {
	return Volunteer{
		Name:      values["nome"],
		Email:     values["email"],
		BirthDate: values["nascimento"],
		CPF:       values["cpf"],
		Phone:     values["telefone"],
		CEP:       values["cep"],
		Street:    values["endereco"],
		District:  values["bairro"],
		City:      values["cidade"],
		State:     values["estado"],
	}
}

// Tag is a coloured label on a project card. Type is one of the tag
// styles: "success", "warning" or "info".
type Tag struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Project is one card of the projects page.
type Project struct {
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Tags        []Tag  `json:"tags"`
}

// Address is the result of a postal-code lookup.
type Address struct {
	CEP      string `json:"cep"`
	Street   string `json:"endereco"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	State    string `json:"estado"`
}
