package config

import (
	"strings"
	"text/template"
)

var colors = map[string]string{
	"default":    "#DEF4ED",
	"gold-light": "#ffec99",
	"jade-light": "#6aa88f",
}

var DefaultConfig string = `
logging:
  console-level: 1
  file-level: -1

parser:
  flush: observed

output: yaml

print:
  color-default: '{{ index .Colors "default" }}'
  color-date: '{{ index .Colors "jade-light" }}'
  color-time: '{{ index .Colors "gold-light" }}'
`

func init() {
	tmpl := template.Must(template.New("config").Parse(DefaultConfig))
	var str strings.Builder
	if err := tmpl.Execute(&str, struct{ Colors map[string]string }{colors}); err != nil {
		panic(err)
	}
	DefaultConfig = str.String()
}
