// Package web 内嵌表单页面模板
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// IndexTemplate 表单页模板名
const IndexTemplate = "index.html"

// Templates 解析内嵌的页面模板
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
