package webui

// adminNav is the sub-navigation shared by admin pages
const adminNav = `<div class="nav-links" style="margin-bottom: 1rem;">
	<a href="/admin">Analytics</a>
	<a href="/admin/users">Users</a>
	<a href="/admin/tickets">Support board</a>
	<a href="/admin/logs">Logs</a>
	<a href="/admin/model">Model</a>
</div>`

// adminHomeTemplate is the HTML template for the admin analytics page
const adminHomeTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Admin</h1>
` + adminNav + `
<div class="grid">
	<div class="card stat"><div class="value">{{.Report.TotalUsers}}</div><div class="label">Users</div></div>
	<div class="card stat"><div class="value">{{.Report.Students}}</div><div class="label">Students</div></div>
	<div class="card stat"><div class="value">{{.Report.Admins}}</div><div class="label">Admins</div></div>
	<div class="card stat"><div class="value">{{.Report.TotalPredictions}}</div><div class="label">Predictions</div></div>
	<div class="card stat"><div class="value">{{.Report.MonthlyPredictions}}</div><div class="label">This month</div></div>
	<div class="card stat"><div class="value">{{percent .Report.AvgConfidence}}%</div><div class="label">Avg confidence</div></div>
</div>

<div class="card">
	<h3>Top predicted roles</h3>
	{{if .Report.TopJobs}}
	<table>
	<tr><th>Role</th><th>Predictions</th></tr>
	{{range .Report.TopJobs}}<tr><td>{{.Job}}</td><td>{{.Count}}</td></tr>{{end}}
	</table>
	{{else}}<p class="muted">No data yet.</p>{{end}}
</div>

<div class="card">
	<h3>Universities</h3>
	{{if .Report.Universities}}
	<table>
	<tr><th>University</th><th>Students</th></tr>
	{{range .Report.Universities}}<tr><td>{{.Name}}</td><td>{{.Count}}</td></tr>{{end}}
	</table>
	{{else}}<p class="muted">No data yet.</p>{{end}}
</div>

<div class="card">
	<h3>Predictions this week</h3>
	{{if .Report.DailyPredictions}}
	<table>
	<tr><th>Day</th><th>Predictions</th></tr>
	{{range .Report.DailyPredictions}}<tr><td>{{.Day}}</td><td>{{.Predictions}}</td></tr>{{end}}
	</table>
	{{else}}<p class="muted">No data yet.</p>{{end}}
</div>

<div class="card">
	<h3>User growth</h3>
	{{if .Report.UserGrowth}}
	<table>
	<tr><th>Month</th><th>Users</th><th>Active</th></tr>
	{{range .Report.UserGrowth}}<tr><td>{{.Month}}</td><td>{{.Users}}</td><td>{{.Active}}</td></tr>{{end}}
	</table>
	{{else}}<p class="muted">No data yet.</p>{{end}}
</div>
</main>
{{template "foot" .}}`

// adminUsersTemplate is the HTML template for the admin user list
const adminUsersTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Users</h1>
` + adminNav + `
{{if .Users}}
{{range .Users}}
<div class="card">
	<h3>{{.Name}} <span class="muted">{{.Email}}</span>
		{{if .IsFlagged}}<span class="badge badge-flagged">flagged</span>{{end}}
	</h3>
	<p class="muted">Joined {{.DateJoined}} &middot; {{.Role}}</p>
	{{if .IsFlagged}}<p class="muted">Reason: {{.FlagReason}}</p>{{end}}
	<form class="inline-form" method="post" action="/admin/users/{{.ID}}/role">
		<select name="role">
			<option value="student"{{if eq .Role "student"}} selected{{end}}>student</option>
			<option value="admin"{{if eq .Role "admin"}} selected{{end}}>admin</option>
		</select>
		<button type="submit">Change role</button>
	</form>
	{{if .IsFlagged}}
	<form class="inline-form" method="post" action="/admin/users/{{.ID}}/unflag">
		<button type="submit">Unflag</button>
	</form>
	{{else}}
	<form class="inline-form" method="post" action="/admin/users/{{.ID}}/flag">
		<input type="text" name="reason" placeholder="Reason" required>
		<button type="submit">Flag</button>
	</form>
	{{end}}
	<form class="inline-form" method="post" action="/admin/users/{{.ID}}/delete">
		<button type="submit" class="danger">Delete</button>
	</form>
</div>
{{end}}
{{else}}
<p class="muted">No users found.</p>
{{end}}
</main>
{{template "foot" .}}`

// adminTicketsTemplate is the HTML template for the admin support board
const adminTicketsTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Support board</h1>
` + adminNav + `
{{if .Tickets}}
{{range .Tickets}}
<div class="card">
	<h3>{{.Subject}} <span class="badge badge-{{.Status}}">{{.Status}}</span></h3>
	<p class="muted">{{.UserEmail}} &middot; {{.Type}} &middot; {{.CreatedAt}}</p>
	<p>{{.Message}}</p>
	{{if .AdminReply}}<p class="muted">Replied: {{.AdminReply}}</p>{{end}}
	<form method="post" action="/admin/tickets/{{.ID}}/reply">
		<textarea name="reply" rows="2" placeholder="Write a reply" required></textarea>
		<button type="submit">Send reply</button>
	</form>
	<form class="inline-form" method="post" action="/admin/tickets/{{.ID}}/status">
		<select name="status">
			<option value="open"{{if eq .Status "open"}} selected{{end}}>open</option>
			<option value="in_progress"{{if eq .Status "in_progress"}} selected{{end}}>in progress</option>
			<option value="resolved"{{if eq .Status "resolved"}} selected{{end}}>resolved</option>
		</select>
		<button type="submit">Update status</button>
	</form>
</div>
{{end}}
{{else}}
<p class="muted">No tickets.</p>
{{end}}
</main>
{{template "foot" .}}`

// adminLogsTemplate is the HTML template for the admin logs page
const adminLogsTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Logs</h1>
` + adminNav + `
<div class="card">
	<h3>Predictions</h3>
	{{if .Predictions}}
	<table>
	<tr><th>User</th><th>Predicted role</th><th>Confidence</th><th>Status</th><th>When</th></tr>
	{{range .Predictions}}
	<tr><td>{{.User}}</td><td>{{.PredictedJob}}</td><td>{{percent .Confidence}}%</td><td>{{.Status}}</td><td class="muted">{{.Timestamp}}</td></tr>
	{{end}}
	</table>
	{{else}}<p class="muted">No prediction logs.</p>{{end}}
</div>

<div class="card">
	<h3>Admin activity</h3>
	{{if .Activity}}
	<table>
	<tr><th>Time</th><th>Admin</th><th>Action</th><th>Target</th><th>Details</th></tr>
	{{range .Activity}}
	<tr><td class="muted">{{.Time}}</td><td>{{.Admin}}</td><td>{{.Action}}</td><td>{{.Target}}</td><td class="muted">{{.Details}}</td></tr>
	{{end}}
	</table>
	{{else}}<p class="muted">No activity logs.</p>{{end}}
</div>

<div class="card">
	<h3>Prediction feedback</h3>
	{{if .Feedback}}
	<table>
	<tr><th>User</th><th>Rating</th><th>Comment</th><th>Roles</th><th>When</th></tr>
	{{range .Feedback}}
	<tr><td>{{.User}}</td><td>{{.Rating}}/5</td><td>{{.Comment}}</td><td class="muted">{{range $i, $r := .PredictedRoles}}{{if $i}}, {{end}}{{$r}}{{end}}</td><td class="muted">{{.CreatedAt}}</td></tr>
	{{end}}
	</table>
	{{else}}<p class="muted">No feedback yet.</p>{{end}}
</div>
</main>
{{template "foot" .}}`

// adminModelTemplate is the HTML template for the model status page
const adminModelTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Model</h1>
` + adminNav + `
<div class="grid">
	<div class="card stat"><div class="value">{{.Status.Trained}}</div><div class="label">Roles trained</div></div>
	<div class="card stat"><div class="value">{{.Status.Total}}</div><div class="label">Roles total</div></div>
	<div class="card stat"><div class="value">{{percent .Status.Coverage}}%</div><div class="label">Coverage</div></div>
</div>
<div class="card">
	<h3>Retrain</h3>
	<p class="muted">Retrains the prediction model with the latest data. This can take a while.</p>
	<form method="post" action="/admin/model/retrain">
		<button type="submit">Start retraining</button>
	</form>
</div>
</main>
{{template "foot" .}}`
