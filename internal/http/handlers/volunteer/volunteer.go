// Package volunteer contains the HTTP handlers for volunteer
// registrations: the HTML form post, the JSON API and the live field
// validation endpoint used while the visitor types.
//
// HANDLER PATTERN: every exported function is a factory. It receives the
// dependencies once, when the route is registered, and returns the
// http.HandlerFunc that runs on every request:
//
//	r.Post("/api/volunteers", volunteer.New(deps))
package volunteer

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aanand-mishra/ong-site/internal/content"
	"github.com/aanand-mishra/ong-site/internal/http/render"
	"github.com/aanand-mishra/ong-site/internal/i18n"
	"github.com/aanand-mishra/ong-site/internal/metrics"
	"github.com/aanand-mishra/ong-site/internal/router"
	"github.com/aanand-mishra/ong-site/internal/storage"
	"github.com/aanand-mishra/ong-site/internal/theme"
	"github.com/aanand-mishra/ong-site/internal/types"
	"github.com/aanand-mishra/ong-site/internal/utils/response"
	"github.com/aanand-mishra/ong-site/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// FormPath is the route the registration form lives on.
const FormPath = "/cadastro"

// Deps groups what the volunteer handlers need.
type Deps struct {
	Storage   storage.Storage
	Validator *validation.Validator
	Router    *router.Router
	Layout    *render.Layout
	Metrics   *metrics.Metrics
	Language  string

	// NewReference returns the protocol number given to a registration.
	// Defaults to a random UUID.
	NewReference func() string
	// Now stamps CreatedAt. Defaults to time.Now.
	Now func() time.Time
}

func (d Deps) reference() string {
	if d.NewReference != nil {
		return d.NewReference()
	}
	return uuid.NewString()
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now().UTC()
}

// translate turns the failing fields of result into field → message in
// lang.
func translate(result validation.Result, lang language.Tag) map[string]string {
	out := make(map[string]string, len(result.Errors))
	for _, e := range result.Errors {
		out[e.Field] = i18n.Text(lang, e.Message)
	}
	return out
}

// save stores validated, masked values and returns the new record.
func (d Deps) save(values map[string]string) (types.Volunteer, error) {
	v := types.VolunteerFromForm(values)
	v.Reference = d.reference()
	v.CreatedAt = d.now()

	id, err := d.Storage.CreateVolunteer(v)
	if err != nil {
		return types.Volunteer{}, err
	}
	v.ID = id
	return v, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Submit handles POST /cadastro (application/x-www-form-urlencoded).
//
// This is the no-JavaScript path of the registration form:
//
//	invalid → 422, the form again with the masked values and one
//	          message per failing field
//	valid   → 200, an empty form and the success modal open with the
//	          registration's protocol number
//	storage → 500, the form again with the values kept
//
// ─────────────────────────────────────────────────────────────────────────────
func Submit(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r, d.Language)
		slog.Info("registration form submitted")

		if err := r.ParseForm(); err != nil {
			d.Metrics.FormSubmitted("invalid")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		values := make(map[string]string, len(d.Validator.Fields()))
		for _, f := range d.Validator.Fields() {
			values[f.Name] = r.PostForm.Get(f.Name)
		}

		result := d.Validator.Form(values)
		if !result.Valid() {
			d.Metrics.FormSubmitted("invalid")
			slog.Info("registration form invalid", slog.Int("fields", len(result.Errors)))
			d.renderForm(w, r, lang, http.StatusUnprocessableEntity, content.FormView{
				Values:    result.Values,
				Errors:    translate(result, lang),
				Submitted: true,
			}, render.Modal{})
			return
		}

		saved, err := d.save(result.Values)
		if err != nil {
			d.Metrics.FormSubmitted("error")
			slog.Error("error saving volunteer", slog.String("error", err.Error()))
			d.renderForm(w, r, lang, http.StatusInternalServerError, content.FormView{
				Values: result.Values,
			}, render.Modal{})
			return
		}

		d.Metrics.FormSubmitted("valid")
		slog.Info("volunteer registered",
			slog.Int64("id", saved.ID),
			slog.String("reference", saved.Reference))

		d.renderForm(w, r, lang, http.StatusOK, content.FormView{}, render.Modal{
			Open:      true,
			Reference: saved.Reference,
		})
	}
}

func (d Deps) renderForm(w http.ResponseWriter, r *http.Request, lang language.Tag, status int, form content.FormView, modal render.Modal) {
	page := d.Router.Load(r.Context(), FormPath, lang)

	html, err := content.RegistrationForm(form)
	if err != nil {
		slog.Error("error rendering form", slog.String("error", err.Error()))
		html = router.ErrorContent(lang)
		page.Failed = true
	}
	page.Content = html

	view := render.NewView(lang, theme.FromRequest(r), page)
	view.Modal.Open = modal.Open
	view.Modal.Reference = modal.Reference

	if err := d.Layout.Render(w, status, view); err != nil {
		slog.Error("error rendering layout", slog.String("error", err.Error()))
		http.Error(w, i18n.Text(lang, i18n.KeyPageFailed), http.StatusInternalServerError)
	}
}

// created is the body of a successful JSON registration.
type created struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/volunteers
//
// Request body (JSON), keys named after the form fields:
//
//	{ "nome": "Maria", "email": "maria@example.org", "nascimento": "1990-05-12",
//	  "cpf": "111.444.777-35", "telefone": "11987654321", "cep": "01310100",
//	  "endereco": "...", "bairro": "...", "cidade": "...", "estado": "SP" }
//
// Success response (201 Created):
//
//	{ "id": 1, "reference": "3f0c..." }
//
// Error responses:
//
//	400 Bad Request    empty body, malformed JSON, or failed validation
//	500 Internal       database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r, d.Language)
		slog.Info("creating a volunteer")

		var input types.Volunteer
		err := json.NewDecoder(r.Body).Decode(&input)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		result := d.Validator.Form(input.FormValues())
		if !result.Valid() {
			d.Metrics.FormSubmitted("invalid")
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(result.Errors, lang))
			return
		}

		saved, err := d.save(result.Values)
		if err != nil {
			d.Metrics.FormSubmitted("error")
			slog.Error("error saving volunteer", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		d.Metrics.FormSubmitted("valid")
		slog.Info("volunteer created", slog.Int64("id", saved.ID))
		response.WriteJSON(w, http.StatusCreated, created{ID: saved.ID, Reference: saved.Reference})
	}
}

// validateResponse is the body of POST /api/validate.
type validateResponse struct {
	Valid  bool              `json:"valid"`
	Values map[string]string `json:"values"`
	Fields map[string]string `json:"fields"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validate handles POST /api/validate
//
// Live validation: the client posts the fields it wants checked (usually
// one, on every input event) and gets back the masked values and the
// message of each failing field. Fields not in the rule table are
// ignored.
//
//	→ { "cpf": "11144477735" }
//	← { "valid": true, "values": { "cpf": "111.444.777-35" }, "fields": {} }
//
// ─────────────────────────────────────────────────────────────────────────────
func Validate(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r, d.Language)

		var values map[string]string
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		result := d.Validator.Partial(values)
		response.WriteJSON(w, http.StatusOK, validateResponse{
			Valid:  result.Valid(),
			Values: result.Values,
			Fields: translate(result, lang),
		})
	}
}

// parseID reads the {id} path value.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// writeStorageError maps storage errors onto status codes.
func writeStorageError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, storage.ErrNotFound) {
		status = http.StatusNotFound
	}
	response.WriteJSON(w, status, response.GeneralError(err))
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/volunteers/{id}
//
//	200 OK             the volunteer
//	400 Bad Request    id is not an integer
//	404 Not Found      no such volunteer
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}
		slog.Info("getting a volunteer", slog.Int64("id", id))

		v, err := d.Storage.GetVolunteerByID(id)
		if err != nil {
			slog.Error("error getting volunteer",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			writeStorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, v)
	}
}

// GetList handles GET /api/volunteers and returns every registration as
// a JSON array ([] when there are none).
func GetList(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all volunteers")

		volunteers, err := d.Storage.GetVolunteers()
		if err != nil {
			slog.Error("error getting volunteers", slog.String("error", err.Error()))
			writeStorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, volunteers)
	}
}

// Delete handles DELETE /api/volunteers/{id}.
func Delete(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}
		slog.Info("deleting a volunteer", slog.Int64("id", id))

		if err := d.Storage.DeleteVolunteerByID(id); err != nil {
			slog.Error("error deleting volunteer",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			writeStorageError(w, err)
			return
		}

		slog.Info("volunteer deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
