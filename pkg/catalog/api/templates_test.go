package api

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-logr/logr"

	"github.com/garunski/comic-catalog/pkg/assets"
)

func TestEmbeddedTemplates(t *testing.T) {
	if err := assets.ValidateFS(TemplateFiles(), "templates"); err != nil {
		t.Fatalf("embedded templates invalid: %v", err)
	}

	tmpl, err := loadTemplates(nil)
	if err != nil {
		t.Fatalf("loadTemplates() error = %v", err)
	}
	for _, name := range []string{"head", "footer", "comic-form", "comic-card", "catalog-page", "activity-page"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %q not defined", name)
		}
	}
}

func TestCustomTemplatesOverride(t *testing.T) {
	custom := fstest.MapFS{
		"templates/partials/footer.html": &fstest.MapFile{
			Data: []byte(`{{define "footer"}}<footer>custom footer</footer></body></html>{{end}}`),
		},
	}

	env := newTestEnv(t)
	handler, err := NewHandler(env.store, env.eventStore, logr.Discard(), "Custom", "v1", custom)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := httptest.NewRecorder()
	handler.CatalogPage(w, httptest.NewRequest(http.MethodGet, "/", nil))

	body := w.Body.String()
	if !strings.Contains(body, "custom footer") {
		t.Error("custom footer not rendered")
	}
	if !strings.Contains(body, "Add Comic") {
		t.Error("built-in form missing after partial override")
	}
}

func TestCustomTemplatesInvalid(t *testing.T) {
	custom := fstest.MapFS{
		"other/file.txt": &fstest.MapFile{Data: []byte("x")},
	}

	if _, err := loadTemplates(custom); err == nil {
		t.Error("loadTemplates() should reject a filesystem without templates/")
	}
}

func TestCoverURL(t *testing.T) {
	coverURL := templateFuncs()["coverURL"].(func(string) template.URL)

	if got := coverURL(testCoverA); string(got) != testCoverA {
		t.Errorf("coverURL(image) = %q, want %q", got, testCoverA)
	}
	for _, bad := range []string{"", "javascript:alert(1)", "data:text/html;base64,PGI+", "https://example.com/a.png"} {
		if got := coverURL(bad); got != "" {
			t.Errorf("coverURL(%q) = %q, want empty", bad, got)
		}
	}
}

func TestTemplateFuncs_NoEnv(t *testing.T) {
	funcs := templateFuncs()
	for _, name := range []string{"env", "expandenv"} {
		if _, ok := funcs[name]; ok {
			t.Errorf("template function %q must not be available", name)
		}
	}
}
