package webui

// dashboardTemplate is the HTML template for the dashboard page
const dashboardTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Welcome back, {{.User.Name}}</h1>
{{if .Stale}}<p class="muted">Showing saved data. The server could not be reached.</p>{{end}}

<div class="grid">
	<div class="card stat">
		<div class="value">{{len .Snapshot.Skills}}</div>
		<div class="label">Skills</div>
	</div>
	<div class="card stat">
		<div class="value">{{.Snapshot.CertCount}}</div>
		<div class="label">Certifications</div>
	</div>
	<div class="card stat">
		<div class="value">{{.Snapshot.TotalRuns}}</div>
		<div class="label">Prediction runs</div>
	</div>
</div>

{{if .Snapshot.HasEducation}}
<div class="card">
	<h3>Education</h3>
	<p>{{.Snapshot.Degree}}{{if .Snapshot.University}} at {{.Snapshot.University}}{{end}}</p>
</div>
{{else}}
<div class="card">
	<h3>Complete your profile</h3>
	<p class="muted">Add your education so predictions have something to work with.</p>
	<a class="button" href="/profile">Go to profile</a>
</div>
{{end}}

{{if .Snapshot.LatestRoles}}
<div class="card">
	<h3>Latest prediction{{if .Snapshot.LatestAt}} <span class="muted">{{.Snapshot.LatestAt}}</span>{{end}}</h3>
	<table>
	<tr><th>Role</th><th>Confidence</th></tr>
	{{range .Snapshot.LatestRoles}}
	<tr>
		<td>{{.Role}}</td>
		<td><div class="bar"><div class="bar-fill" style="width: {{percent .Confidence}}%"></div></div> {{percent .Confidence}}%</td>
	</tr>
	{{end}}
	</table>
</div>
{{else}}
<div class="card">
	<h3>No predictions yet</h3>
	<a class="button" href="/predictions">Run your first prediction</a>
</div>
{{end}}

{{if .Snapshot.Skills}}
<div class="card">
	<h3>Your skills</h3>
	<p>{{range $i, $s := .Snapshot.Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>
</div>
{{end}}
</main>
{{template "foot" .}}`
