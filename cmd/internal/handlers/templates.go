package handlers

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>datagrid</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin: 0.5em 0; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: left; }
.status-failed { color: #b00; }
.status-loading { color: #888; }
form { display: inline-block; margin-right: 1em; }
</style>
</head>
<body>
{{define "controls"}}
<div class="status-{{.Status}}">
  {{- if eq .Status.String "failed"}}Failed to load {{.Resource}}: {{.Err}}{{end -}}
  {{- if eq .Status.String "loading"}}Loading {{.Resource}}...{{end -}}
</div>
<form method="post" action="/api/{{.Resource}}/search">
  <input type="text" name="q" value="{{.Query.Term}}" placeholder="Search">
  <button>Search</button>
</form>
<form method="post" action="/api/{{.Resource}}/filter">
  <select name="attribute">
    <option value="">Select Attribute</option>
    {{- $attr := .Query.Attribute}}
    {{- range fields .Resource}}
    <option value="{{.}}"{{if eq . $attr}} selected{{end}}>{{.}}</option>
    {{- end}}
  </select>
  <input type="text" name="value" value="{{.Query.Value}}" placeholder="Enter Value">
  <button>Filter</button>
</form>
<form method="post" action="/api/{{.Resource}}/filter/clear"><button>Clear filter</button></form>
<form method="post" action="/api/{{.Resource}}/reload"><button>Reload</button></form>
{{end}}
{{define "pager"}}
<div>
  <form method="post" action="/api/{{.Resource}}/page">
    <button name="dir" value="prev"{{if not .HasPrevious}} disabled{{end}}>Previous</button>
    Page {{.Page}} of {{.TotalPages}} ({{.Matched}} of {{.Total}})
    <button name="dir" value="next"{{if not .HasNext}} disabled{{end}}>Next</button>
  </form>
  <form method="post" action="/api/{{.Resource}}/page">
    <input type="number" name="page" min="1" max="{{.TotalPages}}" value="{{.Page}}">
    <button>Go</button>
  </form>
</div>
{{end}}

<section id="users">
<h2>Users</h2>
{{template "controls" .Users}}
<table>
  <thead><tr><th>ID</th><th>Name</th><th>Email</th></tr></thead>
  <tbody>
  {{- range .Users.Rows}}
    <tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Email}}</td></tr>
  {{- end}}
  </tbody>
</table>
{{template "pager" .Users}}
</section>

<section id="posts">
<h2>Posts</h2>
{{template "controls" .Posts}}
<table>
  <thead><tr><th>ID</th><th>Title</th><th>User</th><th>Comments</th></tr></thead>
  <tbody>
  {{- range .Posts.Rows}}
    <tr><td>{{.ID}}</td><td>{{.Title}}</td><td>{{userName .UserID}}</td><td><a href="/api/posts/{{.ID}}/comments">view</a></td></tr>
  {{- end}}
  </tbody>
</table>
{{template "pager" .Posts}}
</section>

<section id="comments">
<h2>Comments</h2>
{{template "controls" .Comments}}
<table>
  <thead><tr><th>ID</th><th>Name</th><th>Email</th><th>Post</th></tr></thead>
  <tbody>
  {{- range .Comments.Rows}}
    <tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Email}}</td><td>{{postTitle .PostID}}</td></tr>
  {{- end}}
  </tbody>
</table>
{{template "pager" .Comments}}
</section>
</body>
</html>
`
