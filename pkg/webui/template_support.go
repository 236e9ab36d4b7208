package webui

// supportTemplate is the HTML template for the support page
const supportTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Support</h1>

<div class="card">
	<h3>New request</h3>
	<form method="post" action="/support">
		<label for="type">Type</label>
		<select id="type" name="type">
			<option value="general">General question</option>
			<option value="bug">Bug report</option>
			<option value="account">Account issue</option>
			<option value="feedback">Feedback</option>
		</select>
		<label for="subject">Subject</label>
		<input type="text" id="subject" name="subject" required>
		<label for="message">Message</label>
		<textarea id="message" name="message" rows="4" required></textarea>
		<button type="submit">Submit</button>
	</form>
</div>

<h2>Your tickets</h2>
{{if .Tickets}}
{{range .Tickets}}
<div class="card">
	<h3>{{.Subject}} <span class="badge badge-{{.Status}}">{{.Status}}</span></h3>
	<p class="muted">{{.Type}} &middot; {{.CreatedAt}}</p>
	<p>{{.Message}}</p>
	{{if .AdminReply}}
	<div class="card">
		<p class="muted">Support reply</p>
		<p>{{.AdminReply}}</p>
	</div>
	{{end}}
	<form class="inline-form" method="post" action="/support/{{.ID}}/delete">
		<button type="submit" class="link">Delete</button>
	</form>
</div>
{{end}}
{{else}}
<p class="muted">No tickets yet.</p>
{{end}}
</main>
{{template "foot" .}}`
