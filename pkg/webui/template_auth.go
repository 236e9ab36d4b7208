package webui

// landingTemplate is the HTML template for the marketing page
const landingTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<div class="hero">
	<h1>From education to employment</h1>
	<p class="muted">Edu2Job predicts the job roles your education and skills point to, and shows you the skills that close the gap.</p>
	<p><a class="button" href="/register">Get started</a> <a class="button" href="/login">Sign in</a></p>
</div>
<main>
<div class="grid">
	<div class="card"><h3>Build your profile</h3><p class="muted">Add your degree, skills, and certifications once.</p></div>
	<div class="card"><h3>Run a prediction</h3><p class="muted">A trained model ranks the roles that fit your background.</p></div>
	<div class="card"><h3>Close the gap</h3><p class="muted">See the missing skills for each role and track your progress.</p></div>
</div>
</main>
{{template "foot" .}}`

// loginTemplate is the HTML template for the login page
const loginTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<div class="auth-page">
<div class="card">
	<h2>Sign in</h2>
	<form method="post" action="/login">
		<label for="email">Email</label>
		<input type="email" id="email" name="email" value="{{.Email}}" required autofocus>
		<label for="password">Password</label>
		<input type="password" id="password" name="password" required>
		<label><input type="checkbox" name="remember_me" value="1"> Remember me</label>
		<button type="submit">Sign in</button>
	</form>
	{{if .GoogleEnabled}}
	<div class="divider">or</div>
	<a class="button" href="/auth/google/start">Continue with Google</a>
	{{end}}
	<p class="muted">No account yet? <a href="/register">Create one</a></p>
</div>
</div>
{{template "foot" .}}`

// registerTemplate is the HTML template for the register page
const registerTemplate = `{{template "head" .}}
{{template "nav" .}}
{{template "flashes" .}}
<div class="auth-page">
<div class="card">
	<h2>Create an account</h2>
	<form method="post" action="/register">
		<label for="name">Name</label>
		<input type="text" id="name" name="name" value="{{.Name}}">
		<label for="email">Email</label>
		<input type="email" id="email" name="email" value="{{.Email}}" required>
		<label for="password">Password</label>
		<input type="password" id="password" name="password" required>
		<label for="confirm_password">Confirm password</label>
		<input type="password" id="confirm_password" name="confirm_password" required>
		<button type="submit">Create account</button>
	</form>
	{{if .GoogleEnabled}}
	<div class="divider">or</div>
	<a class="button" href="/auth/google/start">Continue with Google</a>
	{{end}}
	<p class="muted">Already registered? <a href="/login">Sign in</a></p>
</div>
</div>
{{template "foot" .}}`
