package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	JobsAPI struct {
		BaseURL string
		Timeout time.Duration
	}

	// FetchTimeout bounds one controller fetch
	FetchTimeout      time.Duration
	ResetClearsSearch bool

	Credential struct {
		Token    string // static JWT_TOKEN
		RedisURL string
		Key      string
	}

	Neo4j struct {
		URI      string
		Username string
		Password string
	} // optional, all or nothing

	SheetsCredentialsPath string
}

// Neo4jEnabled reports whether the browsed-jobs catalog is configured
func (c Config) Neo4jEnabled() bool {
	return c.Neo4j.URI != ""
}

// Load reads an optional .env file and then environment variables
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv populates config using getenv
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.JobsAPI.BaseURL = "https://apis.ccbp.in"
	cfg.JobsAPI.Timeout = 15 * time.Second
	cfg.FetchTimeout = 10 * time.Second
	cfg.Credential.Key = "jwt_token"

	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := getenv("JOBS_API_BASE_URL"); v != "" {
		cfg.JobsAPI.BaseURL = strings.TrimRight(v, "/")
	}

	var problems []string

	if d, ok, err := millis(getenv, "JOBS_API_TIMEOUT_MS"); err != nil {
		problems = append(problems, err.Error())
	} else if ok {
		cfg.JobsAPI.Timeout = d
	}

	if d, ok, err := millis(getenv, "FETCH_TIMEOUT_MS"); err != nil {
		problems = append(problems, err.Error())
	} else if ok {
		cfg.FetchTimeout = d
	}

	if v := getenv("RESET_CLEARS_SEARCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			problems = append(problems, fmt.Sprintf("RESET_CLEARS_SEARCH must be a boolean, got %q", v))
		}
		cfg.ResetClearsSearch = b
	}

	cfg.Credential.Token = getenv("JWT_TOKEN")
	cfg.Credential.RedisURL = getenv("REDIS_URL")
	if v := getenv("CREDENTIAL_KEY"); v != "" {
		cfg.Credential.Key = v
	}

	cfg.Neo4j.URI = getenv("NEO4J_URI")
	cfg.Neo4j.Username = getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = getenv("NEO4J_PASSWORD")

	cfg.SheetsCredentialsPath = getenv("SHEETS_CREDENTIALS_PATH")

	// Neo4j is optional but a partial setup is a mistake
	if cfg.Neo4j.URI != "" || cfg.Neo4j.Username != "" || cfg.Neo4j.Password != "" {
		var missingVars []string

		if cfg.Neo4j.URI == "" {
			missingVars = append(missingVars, "NEO4J_URI")
		}

		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}

		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}

		if len(missingVars) > 0 {
			problems = append(problems, fmt.Sprintf("missing required environment variables: %s", strings.Join(missingVars, ", ")))
		}
	}

	if len(problems) > 0 {
		return cfg, fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

func millis(getenv func(string) string, name string) (time.Duration, bool, error) {
	v := getenv(name)
	if v == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false, fmt.Errorf("%s must be a positive integer, got %q", name, v)
	}

	return time.Duration(n) * time.Millisecond, true, nil
}
