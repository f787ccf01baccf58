package gen

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/CarlvinJerry/MyCodegent/model"
)

// Boilerplate artifacts are rendered with text/template instead of jennifer:
// manifests, settings, docs and middleware are mostly prose with small
// injected regions, and templates keep them readable. Every Go source
// produced here is run through the imports formatter so the emitted file is
// gofmt-clean with a resolved import block.

type entityData struct {
	Name   string
	Plural string
	Route  string
}

type boilerplateData struct {
	Cfg      model.GenerationConfig
	Module   string
	Entities []entityData
}

func newBoilerplateData(all []model.EntityModel, cfg model.GenerationConfig) boilerplateData {
	d := boilerplateData{Cfg: cfg, Module: ModulePath(cfg)}
	for _, e := range all {
		d.Entities = append(d.Entities, entityData{
			Name:   e.Name,
			Plural: Plural(e.Name),
			Route:  RoutePath(e),
		})
	}
	return d
}

var tmplFuncs = template.FuncMap{
	"lower":      strings.ToLower,
	"lowerFirst": lowerFirst,
}

func mustTmpl(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(tmplFuncs).Parse(text))
}

// renderText executes a template into a plain-text artifact.
func renderText(t *template.Template, data boilerplateData, relPath string) (model.GeneratedArtifact, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return model.GeneratedArtifact{}, NewRenderError("", t.Name(), "template execution failed", err)
	}
	return model.NewArtifact(relPath, buf.String()), nil
}

// renderGoSource executes a template and formats the result as Go source,
// resolving the import block.
func renderGoSource(t *template.Template, data boilerplateData, relPath string) (model.GeneratedArtifact, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return model.GeneratedArtifact{}, NewRenderError("", t.Name(), "template execution failed", err)
	}
	src, err := imports.Process(relPath, buf.Bytes(), nil)
	if err != nil {
		return model.GeneratedArtifact{}, NewRenderError("", t.Name(), "emitted source does not format", err)
	}
	return model.NewArtifact(relPath, string(src)), nil
}

const goHeader = "// Code generated by MyCodegent. DO NOT EDIT.\n\n"

var programTmpl = mustTmpl("program", goHeader+`package main

import (
	"context"
	"net/http"
	"os"

{{- if eq .Cfg.Observability.LoggingProvider "Zap"}}
	"go.uber.org/zap"
{{- else if eq .Cfg.Observability.LoggingProvider "Logrus"}}
	"github.com/sirupsen/logrus"
{{- else}}
	"log/slog"
{{- end}}

	persistence "{{.Module}}/Infrastructure/Persistence"
{{- if .Cfg.GenerateApi}}
	controllers "{{.Module}}/Api/Controllers"
	middleware "{{.Module}}/Api/Middleware"
{{- end}}
{{- range .Entities}}
	create{{lower .Name}} "{{$.Module}}/Application/{{.Plural}}/Commands/Create{{.Name}}"
	update{{lower .Name}} "{{$.Module}}/Application/{{.Plural}}/Commands/Update{{.Name}}"
	delete{{lower .Name}} "{{$.Module}}/Application/{{.Plural}}/Commands/Delete{{.Name}}"
	get{{lower .Name}}byid "{{$.Module}}/Application/{{.Plural}}/Queries/Get{{.Name}}ById"
	getall{{lower .Plural}} "{{$.Module}}/Application/{{.Plural}}/Queries/GetAll{{.Plural}}"
{{- end}}
)

func main() {
{{- if eq .Cfg.Observability.LoggingProvider "Zap"}}
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
{{- else if eq .Cfg.Observability.LoggingProvider "Logrus"}}
	logger := logrus.New()
{{- else}}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
{{- end}}

	ctx := context.Background()
	store := persistence.NewApplicationStore()
{{- if .Cfg.GenerateSeedData}}
	if err := persistence.Seed(ctx, store); err != nil {
{{- if eq .Cfg.Observability.LoggingProvider "Zap"}}
		logger.Fatal("seeding failed", zap.Error(err))
{{- else if eq .Cfg.Observability.LoggingProvider "Logrus"}}
		logger.WithError(err).Fatal("seeding failed")
{{- else}}
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
{{- end}}
	}
{{- end}}

	mux := http.NewServeMux()
{{- range .Entities}}
	(&controllers.{{.Plural}}Controller{
		Create:  create{{lower .Name}}.Create{{.Name}}CommandHandler{Store: store},
		Update:  update{{lower .Name}}.Update{{.Name}}CommandHandler{Store: store},
		Delete:  delete{{lower .Name}}.Delete{{.Name}}CommandHandler{Store: store},
		GetById: get{{lower .Name}}byid.Get{{.Name}}ByIdQueryHandler{Store: store},
		GetAll:  getall{{lower .Plural}}.GetAll{{.Plural}}QueryHandler{Store: store},
	}).RegisterRoutes(mux)
{{- end}}
{{- if .Cfg.Observability.HealthChecks}}
	(&controllers.HealthController{}).RegisterRoutes(mux)
{{- end}}

	var handler http.Handler = mux
{{- if .Cfg.Caching.ResponseCompression}}
	handler = middleware.Compression(handler)
{{- end}}
{{- if .Cfg.Caching.Enabled}}
	handler = middleware.Cache(handler)
{{- end}}
{{- if .Cfg.Security.RateLimiting}}
	handler = middleware.RateLimit(handler)
{{- end}}
{{- if .Cfg.Security.Cors}}
	handler = middleware.Cors(handler)
{{- end}}
{{- if .Cfg.Auth.Enabled}}
	handler = middleware.Auth(handler)
{{- end}}
{{- if .Cfg.Api.Versioning}}
	handler = middleware.Versioning(handler)
{{- end}}
{{- if .Cfg.Observability.Metrics}}
	handler = middleware.Metrics(handler)
{{- end}}
{{- if .Cfg.ErrorHandling.GlobalExceptionHandler}}
	handler = middleware.Recovery(handler)
{{- end}}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
{{- if eq .Cfg.Observability.LoggingProvider "Zap"}}
	logger.Info("listening", zap.String("addr", addr))
{{- else if eq .Cfg.Observability.LoggingProvider "Logrus"}}
	logger.WithField("addr", addr).Info("listening")
{{- else}}
	logger.Info("listening", "addr", addr)
{{- end}}
	if err := http.ListenAndServe(addr, handler); err != nil {
		os.Exit(1)
	}
}
`)

var healthTmpl = mustTmpl("health-controller", goHeader+`package controllers

import (
	"encoding/json"
	"net/http"
)

// HealthController exposes the liveness probe.
type HealthController struct{}

// RegisterRoutes binds the health route onto the mux.
func (c *HealthController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", c.handle)
}

func (c *HealthController) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
`)

var corsTmpl = mustTmpl("cors", goHeader+`package middleware

import "net/http"

var allowedOrigins = []string{
{{- range .Cfg.Security.AllowedOrigins}}
	"{{.}}",
{{- end}}
}

// Cors allows the configured origins and answers preflight requests.
func Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				break
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
`)

var authTmpl = mustTmpl("auth", goHeader+`package middleware

import (
	"net/http"
	"strings"
)

const authScheme = "{{.Cfg.Auth.Type}}"

// Auth rejects requests without a bearer token. Token verification is a
// deployment concern; wire your identity provider here.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
{{if .Cfg.Auth.RoleBasedAuth}}
// RequireRole rejects requests whose token roles do not include the role.
func RequireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, have := range strings.Split(r.Header.Get("X-Roles"), ",") {
			if strings.TrimSpace(have) == role {
				next.ServeHTTP(w, r)
				return
			}
		}
		http.Error(w, "forbidden", http.StatusForbidden)
	})
}
{{end}}`)

var recoveryTmpl = mustTmpl("recovery", goHeader+`package middleware

import (
	"fmt"
	"net/http"
)

// Recovery turns panics into 500 responses instead of dropped connections.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
{{- if .Cfg.ErrorHandling.ProblemDetails}}
				WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", fmt.Sprint(rec))
{{- else}}
				http.Error(w, fmt.Sprint(rec), http.StatusInternalServerError)
{{- end}}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
`)

var problemTmpl = mustTmpl("problem-details", goHeader+`package middleware

import (
	"encoding/json"
	"net/http"
)

// Problem is an RFC 7807 response body.
type Problem struct {
	Type   string `+"`"+`json:"type"`+"`"+`
	Title  string `+"`"+`json:"title"`+"`"+`
	Status int    `+"`"+`json:"status"`+"`"+`
	Detail string `+"`"+`json:"detail,omitempty"`+"`"+`
}

// WriteProblem writes a problem+json response.
func WriteProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Problem{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	})
}
`)

var rateLimitTmpl = mustTmpl("rate-limit", goHeader+`package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Limit(100), 200)

// RateLimit sheds load once the request rate exceeds the configured budget.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
`)

var compressionTmpl = mustTmpl("compression", goHeader+`package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

type gzipWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (g gzipWriter) Write(b []byte) (int, error) { return g.zw.Write(b) }

// Compression gzips responses for clients that accept it.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		zw := gzip.NewWriter(w)
		defer zw.Close()
		next.ServeHTTP(gzipWriter{ResponseWriter: w, zw: zw}, r)
	})
}
`)

var cacheTmpl = mustTmpl("cache", goHeader+`package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"
)

const cacheTTL = 30 * time.Second

type cachedResponse struct {
	body    []byte
	expires time.Time
}

var (
	cacheMu sync.RWMutex
	cached  = map[string]cachedResponse{}
)

type captureWriter struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (c *captureWriter) Write(b []byte) (int, error) {
	c.buf.Write(b)
	return c.ResponseWriter.Write(b)
}

// Cache serves repeated GET requests from a short-lived in-memory cache.
func Cache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}
		cacheMu.RLock()
		entry, ok := cached[r.URL.Path]
		cacheMu.RUnlock()
		if ok && time.Now().Before(entry.expires) {
			w.Header().Set("X-Cache", "HIT")
			_, _ = w.Write(entry.body)
			return
		}
		cw := &captureWriter{ResponseWriter: w}
		next.ServeHTTP(cw, r)
		cacheMu.Lock()
		cached[r.URL.Path] = cachedResponse{body: cw.buf.Bytes(), expires: time.Now().Add(cacheTTL)}
		cacheMu.Unlock()
	})
}
`)

var metricsTmpl = mustTmpl("metrics", goHeader+`package middleware

import (
	"expvar"
	"net/http"
)

var requestCount = expvar.NewInt("http_requests_total")

// Metrics counts requests. Counters are exported on /debug/vars.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		next.ServeHTTP(w, r)
	})
}
`)

var versioningTmpl = mustTmpl("versioning", goHeader+`package middleware

import "net/http"

// APIVersion identifies the emitted contract version.
const APIVersion = "1.0"

// Versioning stamps every response with the API version header.
func Versioning(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Api-Version", APIVersion)
		next.ServeHTTP(w, r)
	})
}
`)

var unitTestTmpl = mustTmpl("unit-tests", goHeader+`package persistence

import (
	"context"
	"testing"
{{if eq .Cfg.Testing.Framework "Testify"}}
	"github.com/stretchr/testify/require"
{{end}}
	entities "{{.Module}}/Domain/Entities"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewApplicationStore()
{{range .Entities}}
	t.Run("{{.Name}}", func(t *testing.T) {
		item := &entities.{{.Name}}{}
{{- if eq $.Cfg.Testing.Framework "Testify"}}
		require.NoError(t, store.{{.Plural}}().Add(ctx, item))
		list, err := store.{{.Plural}}().List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NoError(t, store.{{.Plural}}().Remove(ctx, item))
{{- else}}
		if err := store.{{.Plural}}().Add(ctx, item); err != nil {
			t.Fatalf("add: %v", err)
		}
		list, err := store.{{.Plural}}().List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("got %d items, want 1", len(list))
		}
		if err := store.{{.Plural}}().Remove(ctx, item); err != nil {
			t.Fatalf("remove: %v", err)
		}
{{- end}}
	})
{{end}}
}
`)

var integrationTestTmpl = mustTmpl("integration-tests", goHeader+`package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
{{if eq .Cfg.Testing.Framework "Testify"}}
	"github.com/stretchr/testify/require"
{{end}}
	persistence "{{.Module}}/Infrastructure/Persistence"
{{- range .Entities}}
	create{{lower .Name}} "{{$.Module}}/Application/{{.Plural}}/Commands/Create{{.Name}}"
	update{{lower .Name}} "{{$.Module}}/Application/{{.Plural}}/Commands/Update{{.Name}}"
	delete{{lower .Name}} "{{$.Module}}/Application/{{.Plural}}/Commands/Delete{{.Name}}"
	get{{lower .Name}}byid "{{$.Module}}/Application/{{.Plural}}/Queries/Get{{.Name}}ById"
	getall{{lower .Plural}} "{{$.Module}}/Application/{{.Plural}}/Queries/GetAll{{.Plural}}"
{{- end}}
)

func TestRoutesRespond(t *testing.T) {
	store := persistence.NewApplicationStore()
	mux := http.NewServeMux()
{{- range .Entities}}
	(&{{.Plural}}Controller{
		Create:  create{{lower .Name}}.Create{{.Name}}CommandHandler{Store: store},
		Update:  update{{lower .Name}}.Update{{.Name}}CommandHandler{Store: store},
		Delete:  delete{{lower .Name}}.Delete{{.Name}}CommandHandler{Store: store},
		GetById: get{{lower .Name}}byid.Get{{.Name}}ByIdQueryHandler{Store: store},
		GetAll:  getall{{lower .Plural}}.GetAll{{.Plural}}QueryHandler{Store: store},
	}).RegisterRoutes(mux)
{{- end}}
	srv := httptest.NewServer(mux)
	defer srv.Close()
{{range .Entities}}
	t.Run("{{.Route}}", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/{{.Route}}")
{{- if eq $.Cfg.Testing.Framework "Testify"}}
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
{{- else}}
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("got status %d, want 200", resp.StatusCode)
		}
{{- end}}
		resp.Body.Close()
	})
{{end}}
}
`)

var goModTmpl = mustTmpl("go-mod", `module {{.Module}}

go 1.24

require (
	github.com/google/uuid v1.6.0
{{- if eq .Cfg.Observability.LoggingProvider "Zap"}}
	go.uber.org/zap v1.27.0
{{- else if eq .Cfg.Observability.LoggingProvider "Logrus"}}
	github.com/sirupsen/logrus v1.9.3
{{- end}}
{{- if .Cfg.Security.RateLimiting}}
	golang.org/x/time v0.12.0
{{- end}}
{{- if eq .Cfg.Testing.Framework "Testify"}}
	github.com/stretchr/testify v1.11.1
{{- end}}
)
`)

var makefileTmpl = mustTmpl("makefile", `.PHONY: build test run lint

build:
	go build ./...

test:
	go test ./...

run:
	go run ./cmd/api

lint:
	golangci-lint run
`)

var goWorkTmpl = mustTmpl("go-work", `go 1.24

use .
`)

var launchTmpl = mustTmpl("launch-settings", `{
    "version": "0.2.0",
    "configurations": [
        {
            "name": "Launch API",
            "type": "go",
            "request": "launch",
            "mode": "auto",
            "program": "${workspaceFolder}/cmd/api",
            "env": {
                "ADDR": ":8080"
            }
        }
    ]
}
`)

var appSettingsTmpl = mustTmpl("app-settings", `# Application settings.
server:
  addr: ":8080"
database:
  provider: {{.Cfg.DatabaseProvider}}
  connectionString: "{{.Cfg.ConnectionString}}"
logging:
  provider: {{.Cfg.Observability.LoggingProvider}}
  level: info
{{- if .Cfg.Caching.Enabled}}
caching:
  provider: {{.Cfg.Caching.Provider}}
  ttlSeconds: 30
{{- end}}
{{- if .Cfg.Auth.Enabled}}
auth:
  scheme: {{.Cfg.Auth.Type}}
{{- end}}
`)

var appSettingsDevTmpl = mustTmpl("app-settings-dev", `# Development overrides.
logging:
  level: debug
`)

var appSettingsProdTmpl = mustTmpl("app-settings-prod", `# Production overrides.
logging:
  level: warn
`)

var dockerfileTmpl = mustTmpl("dockerfile", `FROM golang:1.24-alpine AS build
WORKDIR /src
COPY go.mod ./
RUN go mod download
COPY . .
RUN CGO_ENABLED=0 go build -o /bin/api ./cmd/api

FROM alpine:3.20
COPY --from=build /bin/api /bin/api
EXPOSE 8080
ENTRYPOINT ["/bin/api"]
`)

var composeTmpl = mustTmpl("docker-compose", `services:
  api:
    build: .
    ports:
      - "8080:8080"
{{- if ne .Cfg.DatabaseProvider "Sqlite"}}
    depends_on:
      - db

  db:
{{- if eq .Cfg.DatabaseProvider "PostgreSql"}}
    image: postgres:16
    environment:
      POSTGRES_PASSWORD: postgres
    ports:
      - "5432:5432"
{{- else if eq .Cfg.DatabaseProvider "MySql"}}
    image: mysql:8
    environment:
      MYSQL_ROOT_PASSWORD: mysql
    ports:
      - "3306:3306"
{{- else}}
    image: mcr.microsoft.com/mssql/server:2022-latest
    environment:
      ACCEPT_EULA: "Y"
      MSSQL_SA_PASSWORD: "Passw0rd!"
    ports:
      - "1433:1433"
{{- end}}
{{- end}}
`)

var k8sTmpl = mustTmpl("kubernetes", `apiVersion: apps/v1
kind: Deployment
metadata:
  name: {{lower .Cfg.RootNamespace}}-api
spec:
  replicas: 2
  selector:
    matchLabels:
      app: {{lower .Cfg.RootNamespace}}-api
  template:
    metadata:
      labels:
        app: {{lower .Cfg.RootNamespace}}-api
    spec:
      containers:
        - name: api
          image: {{lower .Cfg.RootNamespace}}-api:latest
          ports:
            - containerPort: 8080
{{- if .Cfg.Observability.HealthChecks}}
          livenessProbe:
            httpGet:
              path: /healthz
              port: 8080
{{- end}}
---
apiVersion: v1
kind: Service
metadata:
  name: {{lower .Cfg.RootNamespace}}-api
spec:
  selector:
    app: {{lower .Cfg.RootNamespace}}-api
  ports:
    - port: 80
      targetPort: 8080
`)

var githubActionsTmpl = mustTmpl("github-actions", `name: ci

on:
  push:
    branches: [main]
  pull_request:

jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: "1.24"
      - run: go build ./...
      - run: go test ./...
`)

var azurePipelinesTmpl = mustTmpl("azure-pipelines", `trigger:
  - main

pool:
  vmImage: ubuntu-latest

steps:
  - task: GoTool@0
    inputs:
      version: "1.24"
  - script: go build ./...
    displayName: Build
  - script: go test ./...
    displayName: Test
`)

var readmeTmpl = mustTmpl("readme", `# {{.Cfg.RootNamespace}}

Generated web application skeleton.

## Layout

- ` + "`Domain/Entities`" + ` holds the entity structs.
- ` + "`Application`" + ` holds DTOs, commands, queries and their handlers.
- ` + "`Infrastructure/Persistence`" + ` holds the store and mappings.
- ` + "`Api/Controllers`" + ` holds the REST controllers.

## Entities

{{range .Entities}}- {{.Name}} (` + "`/api/{{.Route}}`" + `)
{{end}}
## Running

    go run ./cmd/api
`)

var architectureTmpl = mustTmpl("architecture", `# Architecture

The project follows a layered layout. Dependencies only point inward:
Api depends on Application, Application depends on Domain, Infrastructure
implements the Application interfaces.

## Request flow

1. A controller decodes the request into a command or query.
2. The handler resolves it against the ApplicationStore.
3. Query handlers project entities into DTOs; command handlers return the
   generated key or a success flag.

## Persistence

Entity mappings live in Infrastructure/Persistence/Configurations, one
configuration per entity. The store preserves insertion order so listings
are deterministic.
`)

var apiDocsTmpl = mustTmpl("api-docs", `# API

All routes accept and return JSON.
{{range .Entities}}
## {{.Name}}

| Method | Path | Description |
| ------ | ---- | ----------- |
| GET | /api/{{.Route}} | List {{.Plural}} |
| GET | /api/{{.Route}}/{id} | Fetch one {{.Name}} |
| POST | /api/{{.Route}} | Create a {{.Name}} |
| PUT | /api/{{.Route}}/{id} | Update a {{.Name}} |
| DELETE | /api/{{.Route}}/{id} | Delete a {{.Name}} |
{{end}}`)

var openAPITmpl = mustTmpl("openapi", `openapi: "3.0.3"
info:
  title: {{.Cfg.RootNamespace}} API
  version: "1.0"
paths:
{{- range .Entities}}
  /api/{{.Route}}:
    get:
      summary: List {{.Plural}}
      responses:
        "200":
          description: OK
    post:
      summary: Create a {{.Name}}
      responses:
        "201":
          description: Created
  /api/{{.Route}}/{id}:
    parameters:
      - name: id
        in: path
        required: true
        schema:
          type: string
    get:
      summary: Fetch one {{.Name}}
      responses:
        "200":
          description: OK
        "404":
          description: Not found
    put:
      summary: Update a {{.Name}}
      responses:
        "204":
          description: Updated
    delete:
      summary: Delete a {{.Name}}
      responses:
        "204":
          description: Deleted
{{- end}}
`)

var changelogTmpl = mustTmpl("changelog", `# Changelog

## Unreleased

- Initial generated skeleton.
`)

var gitignoreTmpl = mustTmpl("gitignore", `bin/
*.out
*.test
.env
.DS_Store
`)

var editorconfigTmpl = mustTmpl("editorconfig", `root = true

[*]
charset = utf-8
end_of_line = lf
insert_final_newline = true

[*.go]
indent_style = tab
`)

var golangciTmpl = mustTmpl("golangci", `run:
  timeout: 5m

linters:
  enable:
    - govet
    - staticcheck
    - errcheck
    - ineffassign
    - unused
`)

// boilerplateJob binds a gate, a template, a target path and whether the
// output is Go source.
type boilerplateJob struct {
	enabled  bool
	tmpl     *template.Template
	path     string
	goSource bool
}

// RenderBoilerplate emits every scaffolding artifact whose toggle is on.
// This mirrors the application-infrastructure pass of a full generation run:
// it follows the cross-entity artifacts and never depends on them.
func RenderBoilerplate(all []model.EntityModel, cfg model.GenerationConfig) ([]model.GeneratedArtifact, error) {
	data := newBoilerplateData(all, cfg)

	jobs := []boilerplateJob{
		{cfg.GenerateProgramFile, programTmpl, "cmd/api/main.go", true},
		{cfg.GenerateApi && cfg.Observability.HealthChecks, healthTmpl, "Api/Controllers/HealthController.go", true},
		{cfg.GenerateApi && cfg.Security.Cors, corsTmpl, "Api/Middleware/Cors.go", true},
		{cfg.GenerateApi && cfg.Auth.Enabled, authTmpl, "Api/Middleware/Auth.go", true},
		{cfg.GenerateApi && cfg.ErrorHandling.GlobalExceptionHandler, recoveryTmpl, "Api/Middleware/Recovery.go", true},
		{cfg.GenerateApi && cfg.ErrorHandling.ProblemDetails, problemTmpl, "Api/Middleware/ProblemDetails.go", true},
		{cfg.GenerateApi && cfg.Security.RateLimiting, rateLimitTmpl, "Api/Middleware/RateLimit.go", true},
		{cfg.GenerateApi && cfg.Caching.ResponseCompression, compressionTmpl, "Api/Middleware/Compression.go", true},
		{cfg.GenerateApi && cfg.Caching.Enabled, cacheTmpl, "Api/Middleware/Cache.go", true},
		{cfg.GenerateApi && cfg.Observability.Metrics, metricsTmpl, "Api/Middleware/Metrics.go", true},
		{cfg.GenerateApi && cfg.Api.Versioning, versioningTmpl, "Api/Middleware/Versioning.go", true},
		{cfg.Testing.UnitTests, unitTestTmpl, "Infrastructure/Persistence/ApplicationStore_test.go", true},
		{cfg.GenerateApi && cfg.Testing.IntegrationTests, integrationTestTmpl, "Api/Controllers/Controllers_test.go", true},
		{cfg.GenerateProjectFiles, goModTmpl, "go.mod", false},
		{cfg.GenerateProjectFiles, makefileTmpl, "Makefile", false},
		{cfg.GenerateSolutionFile, goWorkTmpl, "go.work", false},
		{cfg.GenerateLaunchSettings, launchTmpl, ".vscode/launch.json", false},
		{cfg.GenerateAppSettings, appSettingsTmpl, "config/appsettings.yaml", false},
		{cfg.GenerateAppSettings, appSettingsDevTmpl, "config/appsettings.development.yaml", false},
		{cfg.GenerateAppSettings, appSettingsProdTmpl, "config/appsettings.production.yaml", false},
		{cfg.Deployment.Dockerfile, dockerfileTmpl, "Dockerfile", false},
		{cfg.Deployment.DockerCompose, composeTmpl, "docker-compose.yml", false},
		{cfg.Deployment.Kubernetes, k8sTmpl, "deploy/kubernetes.yaml", false},
		{cfg.Deployment.GitHubActions, githubActionsTmpl, ".github/workflows/ci.yml", false},
		{cfg.Deployment.AzureDevOps, azurePipelinesTmpl, "azure-pipelines.yml", false},
		{cfg.Docs.Readme, readmeTmpl, "README.md", false},
		{cfg.Docs.ArchitectureDocs, architectureTmpl, "docs/ARCHITECTURE.md", false},
		{cfg.Docs.ApiDocs, apiDocsTmpl, "docs/API.md", false},
		{cfg.Api.Swagger, openAPITmpl, "docs/openapi.yaml", false},
		{cfg.Docs.ChangeLog, changelogTmpl, "CHANGELOG.md", false},
		{cfg.Tooling.GitIgnore, gitignoreTmpl, ".gitignore", false},
		{cfg.Tooling.EditorConfig, editorconfigTmpl, ".editorconfig", false},
		{cfg.Tooling.CodeAnalysisRules, golangciTmpl, ".golangci.yml", false},
	}

	out := make([]model.GeneratedArtifact, 0, len(jobs))
	for _, job := range jobs {
		if !job.enabled {
			continue
		}
		var (
			a   model.GeneratedArtifact
			err error
		)
		if job.goSource {
			a, err = renderGoSource(job.tmpl, data, job.path)
		} else {
			a, err = renderText(job.tmpl, data, job.path)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
