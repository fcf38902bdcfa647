package report

import "html/template"

const modelViewerScript = `<script type="module" src="https://ajax.googleapis.com/ajax/libs/model-viewer/4.0.0/model-viewer.min.js"></script>`

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 24px; background-color: #111827; color: #e5e7eb; }
a { color: #93c5fd; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.NumSamples}} sample meshes across {{len .Categories}} categories.</p>
<ul>
{{range .Categories}}<li><a href="{{.Link}}">{{.Name}}</a> ({{.Samples}} samples)</li>
{{end}}</ul>
</body>
</html>
`))

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} &mdash; {{.Category}}</title>
` + modelViewerScript + `
<style>
body { font-family: sans-serif; margin: 24px; background-color: #111827; color: #e5e7eb; }
a { color: #93c5fd; }
.sample { display: flex; align-items: flex-start; gap: 16px; margin-bottom: 24px; }
model-viewer { width: 384px; height: 384px; background-color: #1f2937; border-radius: 8px; }
.legend { max-height: 384px; overflow-y: auto; }
.legend-entry { display: flex; align-items: center; margin-bottom: 4px; }
.swatch { width: 16px; height: 16px; margin-right: 8px; border-radius: 2px; }
</style>
</head>
<body>
<h1>{{.Category}}</h1>
<p><a href="{{.Index}}">All categories</a> &middot; Page {{.Page}} of {{.NumPages}}
{{if .Prev}} &middot; <a href="{{.Prev}}">Previous</a>{{end}}
{{if .Next}} &middot; <a href="{{.Next}}">Next</a>{{end}}</p>
{{range .Samples}}<div class="sample">
<model-viewer src="{{.MeshFile}}" alt="3D model" auto-rotate camera-controls></model-viewer>
<model-viewer src="{{.ColoredFile}}" alt="3D model with colored parts" auto-rotate camera-controls></model-viewer>
<div>
<p><strong>UID: {{.UID}}</strong></p>
<div class="legend">
{{range .Legend}}<div class="legend-entry"><div class="swatch" style="background-color: {{.Color}};"></div><span>{{.Label}}</span></div>
{{end}}</div>
</div>
</div>
{{end}}</body>
</html>
`))
