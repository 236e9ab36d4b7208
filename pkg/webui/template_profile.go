package webui

// profileTemplate is the HTML template for the profile page
const profileTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<main>
<h1>Profile</h1>

<div class="card">
	<h3>Account</h3>
	<p>{{.User.Name}} <span class="muted">{{.User.Email}}</span></p>
	<p class="muted">Signed in with {{.User.Provider}}</p>
</div>

<div class="card">
	<h3>Education and skills</h3>
	<form method="post" action="/profile">
		<label for="degree">Degree</label>
		<input type="text" id="degree" name="degree" value="{{if .Profile.Education}}{{.Profile.Education.Degree}}{{end}}">
		<label for="specialization">Specialization</label>
		<input type="text" id="specialization" name="specialization" value="{{if .Profile.Education}}{{.Profile.Education.Specialization}}{{end}}">
		<label for="university">University</label>
		<input type="text" id="university" name="university" value="{{if .Profile.Education}}{{.Profile.Education.University}}{{end}}">
		<label for="cgpa">CGPA</label>
		<input type="number" id="cgpa" name="cgpa" step="0.01" min="0" max="10" value="{{if .Profile.Education}}{{.Profile.Education.CGPA}}{{end}}">
		<label for="year_of_completion">Year of completion</label>
		<input type="number" id="year_of_completion" name="year_of_completion" value="{{if .Profile.Education}}{{.Profile.Education.YearOfCompletion}}{{end}}">
		<label for="skills">Skills <span class="muted">(comma separated)</span></label>
		<input type="text" id="skills" name="skills" value="{{.Skills}}">
		<button type="submit">Save</button>
	</form>
</div>

<div class="card">
	<h3>Certifications</h3>
	{{if .Profile.Certifications}}
	<table>
	<tr><th>Name</th><th>Organization</th><th>Issued</th><th></th></tr>
	{{range .Profile.Certifications}}
	<tr>
		<td>{{.Name}}</td>
		<td>{{.Organization}}</td>
		<td>{{.IssueDate}}</td>
		<td>
			<form class="inline-form" method="post" action="/profile/certifications/{{.ID}}/delete">
				<button type="submit" class="link">Remove</button>
			</form>
		</td>
	</tr>
	{{end}}
	</table>
	{{else}}
	<p class="muted">No certifications yet.</p>
	{{end}}
	<form method="post" action="/profile/certifications">
		<label for="cert_name">Name</label>
		<input type="text" id="cert_name" name="cert_name" required>
		<label for="issuing_organization">Issuing organization</label>
		<input type="text" id="issuing_organization" name="issuing_organization">
		<label for="issue_date">Issue date</label>
		<input type="date" id="issue_date" name="issue_date">
		<button type="submit">Add certification</button>
	</form>
</div>
</main>
{{template "foot" .}}`
