package router

import (
	"context"
	"html/template"

	"github.com/aanand-mishra/ong-site/internal/content"
)

// DefaultRoutes is the site's route table:
//
//	/          → pages/inicio.md
//	/projetos  → project cards generated from content.Projects
//	/cadastro  → the volunteer form, with validation and CEP lookup
func DefaultRoutes() []Route {
	return []Route{
		{
			Path:     "/",
			Title:    "Início",
			Fragment: "inicio.md",
		},
		{
			Path:  "/projetos",
			Title: "Projetos",
			Render: func(context.Context) (template.HTML, error) {
				return content.ProjectsPage()
			},
		},
		{
			Path:  "/cadastro",
			Title: "Cadastro",
			Render: func(context.Context) (template.HTML, error) {
				return content.RegistrationForm(content.FormView{})
			},
			Features: []Feature{FeatureFormValidation, FeatureCEPAutocomplete},
		},
	}
}
