package catalog

import "slices"

// NoFramework is the framework id that is valid for every language.
const NoFramework = "none"

// Framework describes a framework and the languages it can be used with.
type Framework struct {
	ID          string
	Name        string
	Languages   []string
	Description string
}

// SupportsLanguage reports whether the framework declares the language.
func (f Framework) SupportsLanguage(lang string) bool {
	return slices.Contains(f.Languages, lang)
}

var jsts = []string{JavaScript, TypeScript}

var frameworks = []Framework{
	{ID: "react", Name: "React", Languages: jsts, Description: "A JavaScript library for building user interfaces"},
	{ID: "next", Name: "Next.js", Languages: jsts, Description: "The React framework for production"},
	{ID: "vue", Name: "Vue.js", Languages: jsts, Description: "The progressive JavaScript framework"},
	{ID: "nuxt", Name: "Nuxt.js", Languages: jsts, Description: "The intuitive Vue framework"},
	{ID: "svelte", Name: "Svelte", Languages: jsts, Description: "Cybernetically enhanced web apps"},
	{ID: "sveltekit", Name: "SvelteKit", Languages: jsts, Description: "The fastest way to build Svelte apps"},
	{ID: "angular", Name: "Angular", Languages: []string{TypeScript}, Description: "Platform for building mobile and desktop web applications"},
	{ID: "express", Name: "Express", Languages: jsts, Description: "Fast, unopinionated, minimalist web framework"},
	{ID: "nestjs", Name: "NestJS", Languages: []string{TypeScript}, Description: "A progressive Node.js framework"},
	{ID: "fastify", Name: "Fastify", Languages: jsts, Description: "Fast and low overhead web framework"},
	{ID: "koa", Name: "Koa", Languages: jsts, Description: "Next generation web framework for Node.js"},
	{ID: "remix", Name: "Remix", Languages: jsts, Description: "Full stack web framework"},
	{ID: "astro", Name: "Astro", Languages: jsts, Description: "Build faster websites with less client-side JavaScript"},
	{ID: "vite", Name: "Vite", Languages: jsts, Description: "Next generation frontend tooling"},

	{ID: "flask", Name: "Flask", Languages: []string{Python}, Description: "Lightweight WSGI web application framework"},
	{ID: "django", Name: "Django", Languages: []string{Python}, Description: "High-level Python web framework"},
	{ID: "fastapi", Name: "FastAPI", Languages: []string{Python}, Description: "Modern, fast web framework for building APIs"},
	{ID: "pyramid", Name: "Pyramid", Languages: []string{Python}, Description: "Python web framework"},

	{ID: "gin", Name: "Gin", Languages: []string{Go}, Description: "HTTP web framework written in Go"},
	{ID: "echo", Name: "Echo", Languages: []string{Go}, Description: "High performance, minimalist Go web framework"},
	{ID: "fiber", Name: "Fiber", Languages: []string{Go}, Description: "Express-inspired web framework written in Go"},

	{ID: "actix", Name: "Actix", Languages: []string{Rust}, Description: "Powerful, pragmatic, and extremely fast web framework"},
	{ID: "rocket", Name: "Rocket", Languages: []string{Rust}, Description: "Web framework for Rust"},
	{ID: "axum", Name: "Axum", Languages: []string{Rust}, Description: "Ergonomic and modular web framework"},

	{ID: "rails", Name: "Ruby on Rails", Languages: []string{Ruby}, Description: "Full-stack web application framework"},
	{ID: "sinatra", Name: "Sinatra", Languages: []string{Ruby}, Description: "DSL for quickly creating web applications"},

	{ID: "laravel", Name: "Laravel", Languages: []string{PHP}, Description: "The PHP framework for web artisans"},
	{ID: "symfony", Name: "Symfony", Languages: []string{PHP}, Description: "High performance PHP framework"},
	{ID: "slim", Name: "Slim", Languages: []string{PHP}, Description: "PHP micro framework"},

	{ID: "aspnet", Name: "ASP.NET Core", Languages: []string{CSharp}, Description: "Cross-platform framework for building modern apps"},
	{ID: "blazor", Name: "Blazor", Languages: []string{CSharp}, Description: "Build interactive web UIs using C#"},
}

// Frameworks returns every known framework.
func Frameworks() []Framework {
	return slices.Clone(frameworks)
}

// FrameworksFor returns the frameworks that declare lang, in catalog order.
// NoFramework is not included.
func FrameworksFor(lang string) []Framework {
	var out []Framework
	for _, f := range frameworks {
		if f.SupportsLanguage(lang) {
			out = append(out, f)
		}
	}
	return out
}

// LookupFramework returns the framework with the given identifier.
func LookupFramework(id string) (Framework, bool) {
	for _, f := range frameworks {
		if f.ID == id {
			return f, true
		}
	}
	return Framework{}, false
}

// FrameworkName returns the display name for id. NoFramework and unknown
// ids are returned unchanged.
func FrameworkName(id string) string {
	if f, ok := LookupFramework(id); ok {
		return f.Name
	}
	return id
}

// IsFrameworkFor reports whether framework may be combined with lang.
// NoFramework is valid for every language.
func IsFrameworkFor(framework, lang string) bool {
	if framework == NoFramework {
		return true
	}
	f, ok := LookupFramework(framework)
	return ok && f.SupportsLanguage(lang)
}
