// Package content holds the static project list and renders the
// projects page from it.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/aanand-mishra/ong-site/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// FallbackImage replaces a project image that fails to load.
const FallbackImage = "https://placehold.co/600x400/cccccc/ffffff?text=Erro+imagem"

var projectsTemplate = template.Must(
	template.New("projects.html").ParseFS(templateFS, "templates/projects.html"),
)

// Projects is the fixed list shown on the projects page.
var Projects = []types.Project{
	{
		Title:       "Projeto Prato Cheio",
		ImageURL:    "https://placehold.co/600x400/f59e0b/ffffff?text=Projeto+Alimentar",
		Description: "Nosso projeto foca na arrecadação e distribuição de cestas básicas para famílias em situação de vulnerabilidade. Garantir o básico é o primeiro passo para a dignidade.",
		Tags: []types.Tag{
			{Type: "warning", Text: "Segurança Alimentar"},
			{Type: "info", Text: "Comunidade"},
		},
	},
	{
		Title:       "Educação que Liberta",
		ImageURL:    "https://placehold.co/600x400/10b981/ffffff?text=Projeto+Educação",
		Description: "Acreditamos no poder transformador da educação. Este projeto oferece aulas de reforço, material escolar e acesso a cursos profissionalizantes para jovens.",
		Tags: []types.Tag{
			{Type: "success", Text: "Educação"},
			{Type: "info", Text: "Jovens"},
		},
	},
	{
		Title:       "Conectando Gerações",
		ImageURL:    "https://placehold.co/600x400/6366f1/ffffff?text=Inclusão+Digital",
		Description: "Levamos inclusão digital para idosos, ensinando o uso de smartphones e computadores para que possam se conectar com suas famílias e ter acesso a serviços.",
		Tags: []types.Tag{
			{Type: "info", Text: "Inclusão Digital"},
			{Type: "success", Text: "Idosos"},
		},
	},
}

// Donation details shown in the "Como Doar" box.
type Donation struct {
	PixKey  string
	Bank    string
	Agency  string
	Account string
}

// DefaultDonation is the organisation's bank information.
var DefaultDonation = Donation{
	PixKey:  "12.345.678/0001-99",
	Bank:    "001 - Banco do Brasil",
	Agency:  "1234-5",
	Account: "54321-0",
}

type projectsView struct {
	Projects      []types.Project
	Donation      Donation
	FallbackImage string
}

// ProjectsPage renders the projects page markup from Projects.
func ProjectsPage() (template.HTML, error) {
	return RenderProjects(Projects, DefaultDonation)
}

// RenderProjects renders the projects page for an arbitrary list.
func RenderProjects(projects []types.Project, donation Donation) (template.HTML, error) {
	var buf bytes.Buffer
	err := projectsTemplate.Execute(&buf, projectsView{
		Projects:      projects,
		Donation:      donation,
		FallbackImage: FallbackImage,
	})
	if err != nil {
		return "", fmt.Errorf("content.RenderProjects: %w", err)
	}
	return template.HTML(buf.String()), nil
}
