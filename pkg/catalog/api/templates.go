package api

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/Masterminds/sprig/v3"

	"github.com/garunski/comic-catalog/pkg/assets"
	"github.com/garunski/comic-catalog/pkg/catalog/comic"
)

//go:embed templates/pages/*.html templates/components/*.html templates/partials/*.html templates/static/*
var templateFiles embed.FS

// TemplateFiles returns the embedded template filesystem
func TemplateFiles() embed.FS {
	return templateFiles
}

var templatePatterns = []string{
	"templates/pages/*.html",
	"templates/components/*.html",
	"templates/partials/*.html",
}

func templateFuncs() template.FuncMap {
	funcMap := sprig.HtmlFuncMap()
	delete(funcMap, "env")
	delete(funcMap, "expandenv")

	// html/template rejects data: URLs in src; only validated image
	// data URLs are marked safe.
	funcMap["coverURL"] = func(dataURL string) template.URL {
		if comic.ValidateImageDataURL(dataURL) != nil {
			return ""
		}
		return template.URL(dataURL)
	}

	return funcMap
}

// loadTemplates parses all page, component and partial templates. Templates
// from a custom filesystem are parsed after the embedded ones, so any
// definition they contain replaces the built-in one of the same name.
func loadTemplates(customTemplateFS fs.FS) (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())
	if err := parseTemplateFS(tmpl, templateFiles); err != nil {
		return nil, err
	}

	if customTemplateFS != nil {
		if err := assets.ValidateFS(customTemplateFS, "templates"); err != nil {
			return nil, fmt.Errorf("invalid custom templates: %w", err)
		}
		if err := parseTemplateFS(tmpl, customTemplateFS); err != nil {
			return nil, fmt.Errorf("custom templates: %w", err)
		}
	}

	return tmpl, nil
}

func parseTemplateFS(tmpl *template.Template, templateFS fs.FS) error {
	for _, pattern := range templatePatterns {
		matches, err := fs.Glob(templateFS, pattern)
		if err != nil {
			return fmt.Errorf("failed to glob templates from %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			continue
		}

		if _, err := tmpl.ParseFS(templateFS, pattern); err != nil {
			return fmt.Errorf("failed to parse templates from %s: %w", pattern, err)
		}
	}
	return nil
}

// renderTemplate renders a template with the given data and returns the HTML string
func renderTemplate(tmpl *template.Template, name string, data interface{}) (string, error) {
	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
