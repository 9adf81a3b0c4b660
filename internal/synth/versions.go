package synth

// Ecosystem names a package registry.
type Ecosystem string

// Supported registries.
const (
	NPM       Ecosystem = "npm"
	PyPI      Ecosystem = "pypi"
	GoModules Ecosystem = "go"
	Crates    Ecosystem = "crates"
)

// VersionSource resolves the version string written for a dependency.
// The built-in source is a static table compiled into the binary; its
// entries go stale over time, which is accepted.
type VersionSource interface {
	Version(eco Ecosystem, pkg string) (string, bool)
}

// VersionFunc adapts a function to VersionSource.
type VersionFunc func(eco Ecosystem, pkg string) (string, bool)

// Version implements VersionSource.
func (f VersionFunc) Version(eco Ecosystem, pkg string) (string, bool) {
	return f(eco, pkg)
}

type staticVersions map[Ecosystem]map[string]string

func (s staticVersions) Version(eco Ecosystem, pkg string) (string, bool) {
	v, ok := s[eco][pkg]
	return v, ok
}

// fallbackVersions are used when a source has no entry for a package.
var fallbackVersions = map[Ecosystem]string{
	NPM:       "*",
	PyPI:      "*",
	GoModules: "latest",
	Crates:    "*",
}

// version resolves pkg through the configured source, falling back to the
// ecosystem wildcard.
func (s *Synthesizer) version(eco Ecosystem, pkg string) string {
	if v, ok := s.versions.Version(eco, pkg); ok {
		return v
	}
	return fallbackVersions[eco]
}

// StaticVersions is the built-in version table.
var StaticVersions VersionSource = staticVersions{
	NPM: {
		"express":                           "^4.18.2",
		"cors":                              "^2.8.5",
		"dotenv":                            "^16.3.1",
		"@nestjs/common":                    "^10.0.0",
		"@nestjs/core":                      "^10.0.0",
		"@nestjs/platform-express":          "^10.0.0",
		"@nestjs/cli":                       "^10.0.0",
		"reflect-metadata":                  "^0.1.13",
		"rxjs":                              "^7.8.1",
		"react":                             "^18.2.0",
		"react-dom":                         "^18.2.0",
		"vite":                              "^5.0.0",
		"@vitejs/plugin-react":              "^4.2.0",
		"next":                              "^14.0.0",
		"vue":                               "^3.3.0",
		"@vitejs/plugin-vue":                "^4.5.0",
		"nuxt":                              "^3.8.0",
		"svelte":                            "^4.2.0",
		"@sveltejs/vite-plugin-svelte":      "^3.0.0",
		"@sveltejs/adapter-auto":            "^3.0.0",
		"@sveltejs/kit":                     "^2.0.0",
		"@angular/animations":               "^17.0.0",
		"@angular/common":                   "^17.0.0",
		"@angular/compiler":                 "^17.0.0",
		"@angular/core":                     "^17.0.0",
		"@angular/forms":                    "^17.0.0",
		"@angular/platform-browser":         "^17.0.0",
		"@angular/platform-browser-dynamic": "^17.0.0",
		"@angular/router":                   "^17.0.0",
		"@angular-devkit/build-angular":     "^17.0.0",
		"@angular/cli":                      "^17.0.0",
		"@angular/compiler-cli":             "^17.0.0",
		"tslib":                             "^2.6.0",
		"zone.js":                           "^0.14.0",
		"fastify":                           "^4.24.0",
		"@fastify/cors":                     "^8.4.0",
		"@fastify/helmet":                   "^11.1.0",
		"koa":                               "^2.14.0",
		"koa-router":                        "^12.0.0",
		"koa-bodyparser":                    "^4.4.0",
		"@remix-run/node":                   "^2.3.0",
		"@remix-run/react":                  "^2.3.0",
		"@remix-run/serve":                  "^2.3.0",
		"@remix-run/dev":                    "^2.3.0",
		"astro":                             "^4.0.0",
		"typescript":                        "^5.3.0",
		"@types/node":                       "^20.10.0",
		"ts-node":                           "^10.9.0",
		"ts-node-dev":                       "^2.0.0",
		"@types/express":                    "^4.17.21",
		"@types/cors":                       "^2.8.17",
		"@types/react":                      "^18.2.0",
		"@types/react-dom":                  "^18.2.0",
		"@types/koa":                        "^2.13.12",
		"@types/koa-router":                 "^7.4.8",
		"@types/koa-bodyparser":             "^4.3.12",
		"nodemon":                           "^3.0.0",
		"eslint":                            "^8.55.0",
		"@typescript-eslint/eslint-plugin":  "^6.14.0",
		"@typescript-eslint/parser":         "^6.14.0",
		"eslint-plugin-react":               "^7.33.0",
		"eslint-plugin-react-hooks":         "^4.6.0",
		"eslint-plugin-vue":                 "^9.19.0",
		"prettier":                          "^3.1.0",
		"eslint-config-prettier":            "^9.1.0",
		"eslint-plugin-prettier":            "^5.0.0",
	},
	PyPI: {
		"Flask":         "2.3.0",
		"python-dotenv": "1.0.0",
		"Django":        "4.2.0",
		"fastapi":       "0.100.0",
		"uvicorn":       "0.23.0",
		"pyramid":       "2.0.2",
		"waitress":      "2.1.2",
		"pytest":        "7.3.0",
		"black":         "23.3.0",
		"flake8":        "6.0.0",
	},
	GoModules: {
		"github.com/gin-gonic/gin":    "v1.9.1",
		"github.com/labstack/echo/v4": "v4.11.4",
		"github.com/gofiber/fiber/v2": "v2.52.0",
	},
	Crates: {
		"actix-web":  "4",
		"serde":      "1",
		"serde_json": "1",
		"rocket":     "0.5",
		"axum":       "0.7",
		"tokio":      "1",
	},
}
