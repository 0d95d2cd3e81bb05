package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
)

// fileTemplate is the on-disk form of a user template.
type fileTemplate struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Code        string   `yaml:"code"`
}

// LoadDir adds every *.yaml / *.yml template in dir to the registry, user
// templates replacing built-ins with the same key. Files that fail to load
// are reported as joined *TemplateError values; valid files are still added.
func (r *Registry) LoadDir(dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read template dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	loaded := 0
	var errs []error
	for _, name := range names {
		path := filepath.Join(dir, name)
		t, err := LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Add(t)
		loaded++
	}
	return loaded, errors.Join(errs...)
}

// LoadFile reads one user template. A missing kind is inferred from the
// code; a missing key is derived from the name, then the file name.
func LoadFile(path string) (models.Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Template{}, &TemplateError{File: path, Err: err}
	}
	var ft fileTemplate
	if err := yaml.Unmarshal(raw, &ft); err != nil {
		return models.Template{}, &TemplateError{File: path, Err: err}
	}
	if strings.TrimSpace(ft.Code) == "" {
		return models.Template{}, &TemplateError{File: path, Err: errors.New("empty code")}
	}

	t := models.Template{
		Key:         ft.Key,
		Name:        ft.Name,
		Description: ft.Description,
		Tags:        ft.Tags,
		Code:        ft.Code,
		Source:      path,
	}
	if ft.Kind == "" {
		t.Kind = parser.InferChartType(ft.Code)
	} else {
		kind, ok := models.ParseChartType(ft.Kind)
		if !ok {
			return models.Template{}, &TemplateError{File: path, Err: fmt.Errorf("unknown kind %q", ft.Kind)}
		}
		t.Kind = kind
	}
	if t.Key == "" {
		t.Key = KeyFor(t.Name)
	}
	if t.Key == "" {
		t.Key = KeyFor(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	if t.Name == "" {
		t.Name = t.Key
	}
	return t, nil
}
