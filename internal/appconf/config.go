package appconf

import "strings"

// Environment is the operating environment of the running process.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment converts the --env flag value. Unknown values fall back
// to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the site. It is populated
// from command-line flags when the process starts.
type Config struct {
	Port     int
	Env      Environment
	LogLevel string
	// DataPath is an optional YAML state table replacing the built-in one.
	DataPath string
	// Strict refuses to start when the state data has any problem.
	Strict bool
	// Debug exposes the /debug/table page.
	Debug bool
	// RateLimit is the number of requests per second allowed per client.
	// Zero or less disables limiting.
	RateLimit int
}

// DefaultPort is the HTTP port used when --port is not given.
const DefaultPort = 8000

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Port:      DefaultPort,
		Env:       Development,
		LogLevel:  "info",
		RateLimit: 50,
	}
}
