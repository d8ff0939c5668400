package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// StaticDir is the local directory holding the frontend assets.
	StaticDir string `mapstructure:"static_dir" default:"app/static"`
	// IndexFile is the landing page served at "/", relative to the asset root.
	IndexFile string `mapstructure:"index_file" default:"index.html"`
	// WSPath is the path of the real-time endpoint.
	WSPath string `mapstructure:"ws_path" default:"/ws"`
	// WriteTimeoutSeconds bounds a single write to a live session.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"10"`
}

const (
	DefaultWSPath              = "/ws"
	DefaultWriteTimeoutSeconds = 10
)

// WebSocketPath returns the configured real-time path, falling back to the default.
func (c Config) WebSocketPath() string {
	if c.WSPath == "" {
		return DefaultWSPath
	}
	if c.WSPath[0] != '/' {
		return "/" + c.WSPath
	}
	return c.WSPath
}

// WriteTimeout returns the per-write deadline in seconds, never less than one.
func (c Config) WriteTimeout() int {
	if c.WriteTimeoutSeconds <= 0 {
		return DefaultWriteTimeoutSeconds
	}
	return c.WriteTimeoutSeconds
}
