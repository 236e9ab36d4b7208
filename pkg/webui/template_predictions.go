package webui

// predictionsTemplate is the HTML template for the predictions page
const predictionsTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Predictions</h1>

<div class="card">
	<h3>Run a prediction</h3>
	<p class="muted">Uses your current education, skills, and certifications.</p>
	<form method="post" action="/predictions/run">
		<button type="submit">Predict my roles</button>
	</form>
</div>

{{if .Latest}}
<div class="card">
	<h3>Results</h3>
	<table>
	<tr><th>Role</th><th>Confidence</th><th>Missing skills</th></tr>
	{{range .Latest}}
	<tr>
		<td>{{.JobRole}}</td>
		<td><div class="bar"><div class="bar-fill" style="width: {{percent .Confidence}}%"></div></div> {{percent .Confidence}}%</td>
		<td class="muted">{{range $i, $s := .MissingSkills}}{{if $i}}, {{end}}{{$s}}{{end}}</td>
	</tr>
	{{end}}
	</table>
</div>
{{end}}

<h2>History</h2>
{{if .History}}
{{range .History}}
<div class="card">
	<p class="muted">{{.Timestamp}}</p>
	<p>{{range $i, $r := .PredictedRoles}}{{if $i}}, {{end}}{{$r}}{{end}}</p>
	{{if .MissingSkills}}<p class="muted">Missing: {{range $i, $s := .MissingSkills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>{{end}}
	<form class="inline-form" method="post" action="/predictions/{{.ID}}/delete">
		<button type="submit" class="link">Delete</button>
	</form>
	<details>
		<summary class="muted">Rate this prediction</summary>
		<form method="post" action="/predictions/{{.ID}}/feedback">
			<label for="rating-{{.ID}}">Rating (1-5)</label>
			<select id="rating-{{.ID}}" name="rating">
				<option value="5">5 - Spot on</option>
				<option value="4">4</option>
				<option value="3">3</option>
				<option value="2">2</option>
				<option value="1">1 - Way off</option>
			</select>
			<label for="comment-{{.ID}}">Comment</label>
			<textarea id="comment-{{.ID}}" name="comment" rows="2"></textarea>
			<button type="submit">Send feedback</button>
		</form>
	</details>
</div>
{{end}}
{{else}}
<p class="muted">No prediction runs yet.</p>
{{end}}
</main>
{{template "foot" .}}`
