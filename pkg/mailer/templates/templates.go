package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	Welcome         = "welcome"
	PasswordChanged = "password_changed"
)

var subjects = map[string]string{
	Welcome:         "Welcome to Sociable",
	PasswordChanged: "Your password was changed",
}

var bodies = map[string]*template.Template{
	Welcome: template.Must(template.New(Welcome).Parse(`
<h2>Welcome, {{.Username}}!</h2>
<p>Your account is ready. Follow a few people and your feed fills up on its own.</p>
`)),
	PasswordChanged: template.Must(template.New(PasswordChanged).Parse(`
<h2>Hi {{.Username}},</h2>
<p>The password for your account was just changed. If this wasn't you, reply to this email immediately.</p>
`)),
}

// Render renders a named template with data and returns subject and HTML body.
func Render(name string, data map[string]any) (subject, html string, err error) {
	tpl, ok := bodies[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subjects[name], buf.String(), nil
}
