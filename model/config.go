package model

// DatabaseProvider selects the dialect used by migration and seed-script
// renderers.
type DatabaseProvider string

const (
	SQLServer  DatabaseProvider = "SqlServer"
	PostgreSQL DatabaseProvider = "PostgreSql"
	MySQL      DatabaseProvider = "MySql"
	SQLite     DatabaseProvider = "Sqlite"
)

// AuthenticationType selects the authentication scheme scaffolded into the
// generated API.
type AuthenticationType string

const (
	AuthJWT      AuthenticationType = "JWT"
	AuthIdentity AuthenticationType = "Identity"
	AuthAzureAD  AuthenticationType = "AzureAd"
)

// LoggingProvider selects the structured logger wired into the generated
// bootstrap.
type LoggingProvider string

const (
	LogZap    LoggingProvider = "Zap"
	LogLogrus LoggingProvider = "Logrus"
	LogSlog   LoggingProvider = "Slog"
)

// CachingProvider selects the cache backing the generated caching layer.
type CachingProvider string

const (
	CacheMemory CachingProvider = "Memory"
	CacheRedis  CachingProvider = "Redis"
)

// TestFramework selects the assertion library used by generated tests.
type TestFramework string

const (
	TestTestify TestFramework = "Testify"
	TestStdlib  TestFramework = "Stdlib"
)

// GenerationConfig is the full set of feature toggles for one generation run.
// It is passed by value through every renderer call; no renderer reads
// ambient state. Toggles are orthogonal: no renderer may assume another
// toggle's value except where a gate is explicitly documented (validator
// generation is gated by UseFluentValidation alone).
//
// Related flags are grouped into nested sub-configs, but every flag stays one
// field read away.
type GenerationConfig struct {
	OutputPath    string `json:"outputPath" yaml:"outputPath"`
	RootNamespace string `json:"rootNamespace" yaml:"rootNamespace"`

	// Layer gates.
	GenerateApi            bool `json:"generateApi" yaml:"generateApi"`
	GenerateApplication    bool `json:"generateApplication" yaml:"generateApplication"`
	GenerateDomain         bool `json:"generateDomain" yaml:"generateDomain"`
	GenerateInfrastructure bool `json:"generateInfrastructure" yaml:"generateInfrastructure"`

	// Pattern toggles.
	UseMediator        bool `json:"useMediator" yaml:"useMediator"`
	UseFluentValidation bool `json:"useFluentValidation" yaml:"useFluentValidation"`
	UseAutoMapper      bool `json:"useAutoMapper" yaml:"useAutoMapper"`

	// Persistence.
	DatabaseProvider   DatabaseProvider `json:"databaseProvider" yaml:"databaseProvider"`
	ConnectionString   string           `json:"connectionString,omitempty" yaml:"connectionString,omitempty"`
	GenerateMigrations bool             `json:"generateMigrations" yaml:"generateMigrations"`
	GenerateSeedData   bool             `json:"generateSeedData" yaml:"generateSeedData"`

	// Project scaffolding.
	GenerateProgramFile    bool `json:"generateProgramFile" yaml:"generateProgramFile"`
	GenerateAppSettings    bool `json:"generateAppSettings" yaml:"generateAppSettings"`
	GenerateProjectFiles   bool `json:"generateProjectFiles" yaml:"generateProjectFiles"`
	GenerateSolutionFile   bool `json:"generateSolutionFile" yaml:"generateSolutionFile"`
	GenerateLaunchSettings bool `json:"generateLaunchSettings" yaml:"generateLaunchSettings"`

	Auth          AuthConfig          `json:"auth" yaml:"auth"`
	Api           ApiConfig           `json:"api" yaml:"api"`
	Observability ObservabilityConfig `json:"observability" yaml:"observability"`
	ErrorHandling ErrorHandlingConfig `json:"errorHandling" yaml:"errorHandling"`
	Caching       CachingConfig       `json:"caching" yaml:"caching"`
	Security      SecurityConfig      `json:"security" yaml:"security"`
	Testing       TestingConfig       `json:"testing" yaml:"testing"`
	Deployment    DeploymentConfig    `json:"deployment" yaml:"deployment"`
	Docs          DocsConfig          `json:"docs" yaml:"docs"`
	Tooling       ToolingConfig       `json:"tooling" yaml:"tooling"`
}

// AuthConfig groups authentication scaffolding flags.
type AuthConfig struct {
	Enabled       bool               `json:"enabled" yaml:"enabled"`
	Type          AuthenticationType `json:"type" yaml:"type"`
	Identity      bool               `json:"identity" yaml:"identity"`
	RoleBasedAuth bool               `json:"roleBasedAuth" yaml:"roleBasedAuth"`
}

// ApiConfig groups API surface flags.
type ApiConfig struct {
	Swagger    bool `json:"swagger" yaml:"swagger"`
	Versioning bool `json:"versioning" yaml:"versioning"`
}

// ObservabilityConfig groups logging and monitoring flags.
type ObservabilityConfig struct {
	LoggingProvider LoggingProvider `json:"loggingProvider" yaml:"loggingProvider"`
	HealthChecks    bool            `json:"healthChecks" yaml:"healthChecks"`
	Metrics         bool            `json:"metrics" yaml:"metrics"`
}

// ErrorHandlingConfig groups error surface flags.
type ErrorHandlingConfig struct {
	GlobalExceptionHandler bool `json:"globalExceptionHandler" yaml:"globalExceptionHandler"`
	ProblemDetails         bool `json:"problemDetails" yaml:"problemDetails"`
}

// CachingConfig groups caching flags.
type CachingConfig struct {
	Enabled             bool            `json:"enabled" yaml:"enabled"`
	Provider            CachingProvider `json:"provider" yaml:"provider"`
	ResponseCompression bool            `json:"responseCompression" yaml:"responseCompression"`
}

// SecurityConfig groups cross-origin and throttling flags.
type SecurityConfig struct {
	Cors           bool     `json:"cors" yaml:"cors"`
	AllowedOrigins []string `json:"allowedOrigins,omitempty" yaml:"allowedOrigins,omitempty"`
	RateLimiting   bool     `json:"rateLimiting" yaml:"rateLimiting"`
}

// TestingConfig groups generated-test flags.
type TestingConfig struct {
	UnitTests        bool          `json:"unitTests" yaml:"unitTests"`
	IntegrationTests bool          `json:"integrationTests" yaml:"integrationTests"`
	Framework        TestFramework `json:"framework" yaml:"framework"`
}

// DeploymentConfig groups container and CI flags.
type DeploymentConfig struct {
	Dockerfile    bool `json:"dockerfile" yaml:"dockerfile"`
	DockerCompose bool `json:"dockerCompose" yaml:"dockerCompose"`
	Kubernetes    bool `json:"kubernetes" yaml:"kubernetes"`
	GitHubActions bool `json:"githubActions" yaml:"githubActions"`
	AzureDevOps   bool `json:"azureDevOps" yaml:"azureDevOps"`
}

// DocsConfig groups documentation flags.
type DocsConfig struct {
	Readme           bool `json:"readme" yaml:"readme"`
	ArchitectureDocs bool `json:"architectureDocs" yaml:"architectureDocs"`
	ApiDocs          bool `json:"apiDocs" yaml:"apiDocs"`
	ChangeLog        bool `json:"changeLog" yaml:"changeLog"`
}

// ToolingConfig groups repo hygiene flags.
type ToolingConfig struct {
	EditorConfig      bool `json:"editorConfig" yaml:"editorConfig"`
	GitIgnore         bool `json:"gitIgnore" yaml:"gitIgnore"`
	CodeAnalysisRules bool `json:"codeAnalysisRules" yaml:"codeAnalysisRules"`
}

// DefaultConfig returns the configuration used when the caller supplies
// nothing: all layers on, CQRS patterns on, SQL Server dialect, docs and
// hygiene files on, optional extras off.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		OutputPath:             "./generated",
		RootNamespace:          "MyApp",
		GenerateApi:            true,
		GenerateApplication:    true,
		GenerateDomain:         true,
		GenerateInfrastructure: true,
		UseMediator:            true,
		UseFluentValidation:    true,
		UseAutoMapper:          true,
		DatabaseProvider:       SQLServer,
		GenerateMigrations:     true,
		GenerateProgramFile:    true,
		GenerateAppSettings:    true,
		GenerateProjectFiles:   true,
		GenerateSolutionFile:   true,
		GenerateLaunchSettings: true,
		Auth: AuthConfig{
			Type: AuthJWT,
		},
		Api: ApiConfig{
			Swagger: true,
		},
		Observability: ObservabilityConfig{
			LoggingProvider: LogZap,
			HealthChecks:    true,
		},
		ErrorHandling: ErrorHandlingConfig{
			GlobalExceptionHandler: true,
			ProblemDetails:         true,
		},
		Caching: CachingConfig{
			Provider:            CacheMemory,
			ResponseCompression: true,
		},
		Security: SecurityConfig{
			Cors:           true,
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:4200"},
		},
		Testing: TestingConfig{
			Framework: TestTestify,
		},
		Docs: DocsConfig{
			Readme:           true,
			ArchitectureDocs: true,
			ApiDocs:          true,
		},
		Tooling: ToolingConfig{
			EditorConfig: true,
			GitIgnore:    true,
		},
	}
}
