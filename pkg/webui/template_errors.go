package webui

// forbiddenTemplate is the HTML template for the 403 page
const forbiddenTemplate = `{{template "head" .}}
{{template "nav" .}}
<main>
<div class="card">
	<h2>Access denied</h2>
	<p class="muted">This page is only available to administrators.</p>
	<a class="button" href="/dashboard">Back to dashboard</a>
</div>
</main>
{{template "foot" .}}`

// notFoundTemplate is the HTML template for the 404 page
const notFoundTemplate = `{{template "head" .}}
{{template "nav" .}}
<main>
<div class="card">
	<h2>Page not found</h2>
	<p class="muted">The page you are looking for does not exist.</p>
	<a class="button" href="/">Home</a>
</div>
</main>
{{template "foot" .}}`

// serverErrorTemplate is the HTML template for the 500 page
const serverErrorTemplate = `{{template "head" .}}
{{template "nav" .}}
<main>
<div class="card">
	<h2>Something went wrong</h2>
	<p class="muted">An unexpected error occurred. Please try again.</p>
	<a class="button" href="/">Home</a>
</div>
</main>
{{template "foot" .}}`
