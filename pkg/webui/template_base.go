package webui

// pageShell defines the head and foot shared by every page
const pageShell = `{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} - Edu2Job</title>
<link rel="stylesheet" href="/assets/styles.css">
</head>
<body>
{{end}}
{{define "foot"}}</body>
</html>
{{end}}`

// navPartial is the top navigation. The flag banner sits below it so a
// moderated user sees the reason on every page.
const navPartial = `{{define "nav"}}<nav class="topnav">
<a class="brand" href="/dashboard">Edu2Job</a>
{{if .User}}
<div class="nav-links">
	<a href="/dashboard"{{if eq .Active "dashboard"}} class="active"{{end}}>Dashboard</a>
	<a href="/profile"{{if eq .Active "profile"}} class="active"{{end}}>Profile</a>
	<a href="/predictions"{{if eq .Active "predictions"}} class="active"{{end}}>Predictions</a>
	<a href="/support"{{if eq .Active "support"}} class="active"{{end}}>Support</a>
	{{if .User.IsAdmin}}<a href="/admin"{{if eq .Active "admin"}} class="active"{{end}}>Admin</a>{{end}}
</div>
<div class="nav-user">
	{{if .User.Picture}}<img class="avatar" src="{{.User.Picture}}" alt="">{{end}}
	<span>{{.User.Name}}</span>
	<form method="post" action="/logout"><button type="submit" class="link">Sign out</button></form>
</div>
{{else}}
<div class="nav-links">
	<a href="/login">Sign in</a>
	<a href="/register" class="button">Get started</a>
</div>
{{end}}
</nav>
{{if .User}}{{if .User.IsFlagged}}
<div class="flag-banner">Your account has been flagged: {{.User.FlagReason}}. Contact support if you believe this is a mistake.</div>
{{end}}{{end}}
{{end}}`

// flashPartial renders queued toasts once
const flashPartial = `{{define "flashes"}}{{range .Flashes}}
<div class="flash flash-{{.Severity}}" data-flash-id="{{.ID}}">{{.Message}}</div>
{{end}}{{end}}`
