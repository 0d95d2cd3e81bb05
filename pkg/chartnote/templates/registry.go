// Package templates provides the gallery of starter chart scripts.
package templates

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

// ErrNotFound is returned when no template has the requested key.
var ErrNotFound = errors.New("template not found")

// TemplateError reports a user template file that could not be loaded.
type TemplateError struct {
	File string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %v", e.File, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// Registry holds templates by key.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]models.Template
}

// NewRegistry returns a registry preloaded with the built-in gallery.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]models.Template)}
	for _, t := range builtins() {
		r.templates[t.Key] = t
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the shared registry holding the built-in gallery.
func Default() *Registry {
	return defaultRegistry
}

// Builtin returns the built-in template for a chart kind.
func Builtin(kind models.ChartType) (models.Template, bool) {
	for _, t := range builtins() {
		if t.Kind == kind {
			return t, true
		}
	}
	return models.Template{}, false
}

// Add stores t, replacing any template with the same key.
func (r *Registry) Add(t models.Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.Key] = t
}

// Get returns the template stored under key.
func (r *Registry) Get(key string) (models.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[key]
	return t, ok
}

// Lookup is Get with an error naming the missing key.
func (r *Registry) Lookup(key string) (models.Template, error) {
	if t, ok := r.Get(key); ok {
		return t, nil
	}
	return models.Template{}, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// List returns all templates sorted by key.
func (r *Registry) List() []models.Template {
	r.mu.RLock()
	result := make([]models.Template, 0, len(r.templates))
	for _, t := range r.templates {
		result = append(result, t)
	}
	r.mu.RUnlock()
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// ByKind returns the templates drawing the given chart kind, sorted by key.
func (r *Registry) ByKind(kind models.ChartType) []models.Template {
	var result []models.Template
	for _, t := range r.List() {
		if t.Kind == kind {
			result = append(result, t)
		}
	}
	return result
}

// Search returns templates matching every whitespace-separated term of
// query. Terms match case-insensitively against key, name, kind,
// description and tags. An empty query returns everything.
func (r *Registry) Search(query string) []models.Template {
	fold := cases.Fold()
	terms := strings.Fields(fold.String(query))
	all := r.List()
	if len(terms) == 0 {
		return all
	}
	var result []models.Template
	for _, t := range all {
		haystack := fold.String(strings.Join(append([]string{t.Key, t.Name, string(t.Kind), t.Description}, t.Tags...), "\n"))
		if matchesAll(haystack, terms) {
			result = append(result, t)
		}
	}
	return result
}

func matchesAll(haystack string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
