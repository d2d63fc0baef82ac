package templates

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
}

// Load parses every embedded page. Pages are addressed by file name, e.g. "login.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}
