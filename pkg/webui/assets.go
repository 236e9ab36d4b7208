package webui

// stylesCSS is the shared stylesheet served at /assets/styles.css
const stylesCSS = `:root {
	--color-bg: #f7f8fa;
	--color-surface: #ffffff;
	--color-border: #dde1e6;
	--color-text: #1f2733;
	--color-text-muted: #5b6472;
	--color-primary: #2563eb;
	--color-primary-dark: #1d4ed8;
	--color-success: #15803d;
	--color-error: #b91c1c;
	--color-warning-bg: #fef3c7;
	--color-warning-text: #92400e;
	--radius: 8px;
	--spacing: 1rem;
}

* { box-sizing: border-box; }

body {
	margin: 0;
	font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
	background: var(--color-bg);
	color: var(--color-text);
	line-height: 1.5;
}

.topnav {
	display: flex;
	align-items: center;
	justify-content: space-between;
	padding: 0.75rem 1.5rem;
	background: var(--color-surface);
	border-bottom: 1px solid var(--color-border);
}

.brand {
	font-weight: 700;
	font-size: 1.125rem;
	color: var(--color-primary);
	text-decoration: none;
}

.nav-links { display: flex; gap: 1rem; align-items: center; }
.nav-links a { color: var(--color-text-muted); text-decoration: none; }
.nav-links a.active, .nav-links a:hover { color: var(--color-text); }

.nav-user { display: flex; gap: 0.5rem; align-items: center; color: var(--color-text-muted); }
.avatar { width: 28px; height: 28px; border-radius: 50%; }

.flag-banner {
	padding: 0.625rem 1.5rem;
	background: var(--color-warning-bg);
	color: var(--color-warning-text);
	font-size: 0.9rem;
}

main, .page { max-width: 64rem; margin: 0 auto; padding: 1.5rem; }
.auth-page { max-width: 26rem; margin: 3rem auto; }

.card {
	background: var(--color-surface);
	border: 1px solid var(--color-border);
	border-radius: var(--radius);
	padding: var(--spacing);
	margin-bottom: var(--spacing);
}

.card h2, .card h3 { margin-top: 0; }

.grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(12rem, 1fr)); gap: var(--spacing); }
.stat { text-align: center; }
.stat .value { font-size: 1.75rem; font-weight: 700; }
.stat .label { color: var(--color-text-muted); font-size: 0.875rem; }

form label { display: block; margin: 0.5rem 0 0.25rem; font-size: 0.9rem; color: var(--color-text-muted); }
input[type=text], input[type=email], input[type=password], input[type=number],
input[type=date], select, textarea {
	width: 100%;
	padding: 0.5rem 0.625rem;
	border: 1px solid var(--color-border);
	border-radius: var(--radius);
	font: inherit;
}

button, .button {
	display: inline-block;
	padding: 0.5rem 1rem;
	margin-top: 0.5rem;
	background: var(--color-primary);
	color: #fff;
	border: none;
	border-radius: var(--radius);
	font: inherit;
	cursor: pointer;
	text-decoration: none;
}
button:hover, .button:hover { background: var(--color-primary-dark); }
button.link {
	background: none;
	color: var(--color-text-muted);
	padding: 0;
	margin: 0;
	text-decoration: underline;
}
button.danger { background: var(--color-error); }

table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 0.5rem; border-bottom: 1px solid var(--color-border); }
th { color: var(--color-text-muted); font-weight: 600; font-size: 0.875rem; }

.flash { padding: 0.625rem 1rem; border-radius: var(--radius); margin: 0.75rem auto; max-width: 64rem; }
.flash-success { background: #dcfce7; color: var(--color-success); }
.flash-error { background: #fee2e2; color: var(--color-error); }
.flash-info { background: #dbeafe; color: var(--color-primary-dark); }

.bar { background: var(--color-bg); border-radius: 4px; overflow: hidden; height: 0.5rem; }
.bar-fill { background: var(--color-primary); height: 100%; }

.badge { display: inline-block; padding: 0.125rem 0.5rem; border-radius: 999px; font-size: 0.75rem; }
.badge-open { background: #dbeafe; color: var(--color-primary-dark); }
.badge-in_progress { background: var(--color-warning-bg); color: var(--color-warning-text); }
.badge-resolved { background: #dcfce7; color: var(--color-success); }
.badge-flagged { background: #fee2e2; color: var(--color-error); }

.muted { color: var(--color-text-muted); font-size: 0.875rem; }
.divider { text-align: center; color: var(--color-text-muted); margin: 0.75rem 0; }
.inline-form { display: inline; }
.hero { text-align: center; padding: 4rem 1.5rem; }
.hero h1 { font-size: 2.25rem; margin-bottom: 0.5rem; }
`
