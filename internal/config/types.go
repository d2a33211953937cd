package config

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// DatabaseConfig contains record store settings.
type DatabaseConfig struct {
	// Path is the SQLite database file path.
	Path string `yaml:"path" json:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level" json:"level"`
	Structured       bool              `yaml:"structured" json:"structured"`
	StructuredFormat string            `yaml:"structured_format" json:"structured_format"`
	IncludePID       bool              `yaml:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields,omitempty" json:"extra_fields,omitempty"`
}

// APIConfig contains API surface settings.
//
// Note: APIKey is a secret and must not be returned by API endpoints.
type APIConfig struct {
	APIKey           string   `yaml:"api_key,omitempty" json:"api_key,omitempty"`
	CORSAllowOrigins []string `yaml:"cors_allow_origins,omitempty" json:"cors_allow_origins,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server"`
	Database DatabaseConfig `yaml:"database" json:"database"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
	API      APIConfig      `yaml:"api" json:"api"`
}
