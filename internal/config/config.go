package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Source   SourceConfig   `yaml:"source"`
	Render   RenderConfig   `yaml:"render"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,If-None-Match"`
	ExposedHeaders string `yaml:"exposed_headers" env:"CORS_EXPOSED_HEADERS" env-default:"ETag,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimit caps render requests per client per minute. Zero disables it.
	RateLimit int `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings. DSN is only required
// when chapters come from PostgreSQL.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Source kinds.
const (
	SourcePostgres = "postgres"
	SourceZefania  = "zefania"
)

// SourceConfig selects where chapter text is read from.
type SourceConfig struct {
	Kind string `yaml:"kind" env:"SOURCE_KIND" env-default:"postgres"`
	// Dir holds Zefania XML files, one translation per file.
	Dir string `yaml:"dir" env:"SOURCE_DIR" env-default:"./bibles"`
}

// RenderConfig holds rendering defaults applied when a request leaves them
// unset.
type RenderConfig struct {
	DefaultPrimary   string `yaml:"default_primary"   env:"RENDER_DEFAULT_PRIMARY"   env-default:"KJV"`
	DefaultFormat    string `yaml:"default_format"    env:"RENDER_DEFAULT_FORMAT"    env-default:"html"`
	OccurrenceMarker string `yaml:"occurrence_marker" env:"RENDER_OCCURRENCE_MARKER" env-default:"<sup>%OCCURRENCE%</sup>"`
	OmissionMarker   string `yaml:"omission_marker"   env:"RENDER_OMISSION_MARKER"   env-default:"om."`
	CellOmission     string `yaml:"cell_omission"     env:"RENDER_CELL_OMISSION"     env-default:"-"`
	FontFamily       string `yaml:"font_family"       env:"RENDER_FONT_FAMILY"       env-default:"serif"`
	FontSize         string `yaml:"font_size"         env:"RENDER_FONT_SIZE"         env-default:"1rem"`
	PrimaryColour    string `yaml:"primary_colour"    env:"RENDER_PRIMARY_COLOUR"    env-default:"#000000"`
	SecondaryColour  string `yaml:"secondary_colour"  env:"RENDER_SECONDARY_COLOUR"  env-default:"#555555"`
	HighlightColour  string `yaml:"highlight_colour"  env:"RENDER_HIGHLIGHT_COLOUR"  env-default:"#ffff00"`
	VerseColour      string `yaml:"verse_colour"      env:"RENDER_VERSE_COLOUR"      env-default:"#888888"`

	// NeighbourForAddition shows the preceding primary word next to words
	// only the secondary translation has.
	NeighbourForAddition bool `yaml:"neighbour_for_addition" env:"RENDER_NEIGHBOUR_FOR_ADDITION" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
