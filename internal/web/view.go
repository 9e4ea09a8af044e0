package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

const baseFilename = "base.html"

// View is a collection of templates used to render one HTML page:
// base.html plus the named page template and any partials.
type View struct {
	name     string
	template *template.Template
}

// Parse parses the file system and returns a view for the given name.
func Parse(viewFS fs.FS, name string) (*View, error) {
	// Page names are hardcoded in handlers, but refuse anything that could
	// reach outside the template tree regardless.
	if err := validateName(name); err != nil {
		return nil, err
	}

	files := []string{
		baseFilename,
	}

	if name != baseFilename && name != "" {
		files = append(files, fmt.Sprintf("%s.html", name))
	}

	partials, err := fs.Glob(viewFS, "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob for partials: %w", err)
	}

	files = append(files, partials...)

	t := template.New(baseFilename).Funcs(template.FuncMap{
		// Markdown output is produced server-side by goldmark, which escapes
		// raw HTML in the source document.
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	})
	templ, err := t.ParseFS(viewFS, files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse view: %w", err)
	}

	return &View{
		name:     name,
		template: templ,
	}, nil
}

// Render renders data using the view and writes the result to w.
func (v *View) Render(w io.Writer, data any) error {
	return v.template.Execute(w, data)
}

// validateName checks if all characters are alphanumeric, dashes or underscores.
func validateName(name string) error {
	for _, c := range name {
		if !validViewRune(c) {
			return fmt.Errorf("invalid character %v in view name: %s", c, name)
		}
	}
	return nil
}

func validViewRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
