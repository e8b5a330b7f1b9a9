package window

import (
	"html/template"

	"github.com/gtools-app/gtools/internal/models"
)

type link struct {
	Name string
	URL  template.URL
	Icon string
	Desc string
}

type category struct {
	Title string
	Links []link
}

type pageData struct {
	Title      string
	Categories []category
}

// groupCategories collects the open_url descriptors into categories ordered
// by first appearance; links keep list order within a category.
func groupCategories(items []models.MenuItem) []category {
	var cats []category
	index := make(map[string]int)

	for _, item := range items {
		if item.Action != models.ActionOpenURL || item.Disabled {
			continue
		}
		name := item.CategoryName()
		i, ok := index[name]
		if !ok {
			i = len(cats)
			index[name] = i
			cats = append(cats, category{Title: name})
		}
		cats[i].Links = append(cats[i].Links, link{
			Name: item.Title,
			URL:  template.URL(item.URL), // scheme checked by MenuItem.Validate
			Icon: item.Icon,
			Desc: item.Desc,
		})
	}
	return cats
}

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, sans-serif; margin: 2rem auto; max-width: 960px; color: #222; }
form { margin-bottom: 2rem; }
input[type=search] { width: 100%; padding: .6rem .8rem; font-size: 1.1rem; border-radius: 8px; border: 1px solid #ccc; }
.category { margin-bottom: 1.5rem; }
.category-title { font-weight: 600; margin-bottom: .5rem; }
.links { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: .75rem; }
.link-item { display: block; padding: .75rem; border-radius: 8px; background: #f4f4f6; text-decoration: none; color: inherit; }
.link-icon { margin-right: .4rem; }
.link-desc { display: block; font-size: .85rem; color: #666; margin-top: .25rem; }
.empty-state { text-align: center; color: #666; margin-top: 4rem; }
</style>
</head>
<body>
<form action="/search" method="get">
<input type="search" name="q" placeholder="Search or enter address" autofocus>
</form>
<div id="menuGrid">
{{- range .Categories}}
<div class="category">
<div class="category-title">{{.Title}}</div>
<div class="links">
{{- range .Links}}
<a href="{{.URL}}" class="link-item"><span class="link-icon">{{.Icon}}</span><span class="link-name">{{.Name}}</span><span class="link-desc">{{.Desc}}</span></a>
{{- end}}
</div>
</div>
{{- else}}
<div class="empty-state">
<h2>No tools yet</h2>
<p>Add entries with an open_url action to the menu to list them here.</p>
</div>
{{- end}}
</div>
</body>
</html>
`))
