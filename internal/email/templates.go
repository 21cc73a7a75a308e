package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in HTML templates. Kept inline so the binary is self-contained.
var builtinTemplates = map[string]string{
	"welcome": `
<h2>Welcome to Recruivo, {{.Name}}!</h2>
<p>Your account has been created. Complete your profile to get started.</p>`,

	"application_status": `
<h2>Application update</h2>
<p>Hi {{.StudentName}},</p>
<p>Your application for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b>
is now <b>{{.Status}}</b>.</p>
<p>Log in to Recruivo to see the details.</p>`,
}

type templateRenderer struct {
	templates map[string]*template.Template
}

func newTemplateRenderer() (*templateRenderer, error) {
	r := &templateRenderer{templates: make(map[string]*template.Template)}
	for name, body := range builtinTemplates {
		tmpl, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

func (r *templateRenderer) Render(name string, data TemplateData) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
