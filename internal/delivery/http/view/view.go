// Package view renders the HTML pages through echo's Renderer.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"survey/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Page names.
const (
	PageIndex         = "index"
	PageLogin         = "login"
	PageRegister      = "register"
	PageCreateSurvey  = "create_survey"
	PageEditSurvey    = "edit_survey"
	PageTakeSurvey    = "take_survey"
	PageSurveyResults = "survey_results"
)

const layoutFile = "templates/layout.html"

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every page template receives.
type Page struct {
	User      *entity.User
	Flashes   []string
	Providers []entity.ProviderType
	Data      any
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses each page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutFile {
			continue
		}

		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", name)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render writes page name with data.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}
