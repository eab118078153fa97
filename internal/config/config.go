package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration required by the relay process.
// All values come from env (or an env-file loaded before Load runs).
// No business logic should depend on raw environment variables.
type Config struct {
	App       AppConfig
	Workflow  WorkflowConfig
	Auth      AuthConfig
	FMCSA     FMCSAConfig
	Dashboard DashboardConfig
}

type AppConfig struct {
	Env  string
	Port int
}

// WorkflowConfig points at the downstream workflow that receives accepted
// calls.
type WorkflowConfig struct {
	URL    string
	APIKey string
}

// AuthConfig holds the shared API key the voice workflow presents on every
// request.
type AuthConfig struct {
	APIKey string
}

type FMCSAConfig struct {
	BaseURL string
	WebKey  string
	Timeout time.Duration
}

type DashboardConfig struct {
	// Token is handed to the dashboard page so it can call /metrics.
	// Deployments that want a working dashboard set it equal to API_KEY.
	Token string
}

const (
	defaultEnv            = "local"
	defaultPort           = 8080
	defaultFMCSATimeout   = 10 * time.Second
	defaultDashboardToken = "test"
)

// Load reads and validates the whole configuration. A missing required value
// is a fatal startup error, never a runtime one.
func Load() (Config, error) {
	c := Config{}
	var errs []error

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	if c.App.Env == "" {
		c.App.Env = defaultEnv
	}
	{
		n, err := optionalInt("APP_PORT", defaultPort)
		if err != nil {
			errs = append(errs, err)
		}
		c.App.Port = n
	}

	c.Workflow.URL = strings.TrimSpace(os.Getenv("WF2_URL"))
	c.Workflow.APIKey = os.Getenv("WF2_API_KEY")

	c.Auth.APIKey = os.Getenv("API_KEY")

	c.FMCSA.BaseURL = strings.TrimSpace(os.Getenv("FMCSA_BASE_URL"))
	c.FMCSA.WebKey = os.Getenv("FMC_WEB_KEY")
	{
		d, err := optionalDuration("FMCSA_TIMEOUT", defaultFMCSATimeout)
		if err != nil {
			errs = append(errs, err)
		}
		c.FMCSA.Timeout = d
	}

	c.Dashboard.Token = os.Getenv("DASHBOARD_API_KEY")
	if c.Dashboard.Token == "" {
		c.Dashboard.Token = defaultDashboardToken
	}

	if err := joinErrors(errs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error

	if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}

	if c.Workflow.URL == "" {
		errs = append(errs, errors.New("WF2_URL is required"))
	} else if err := validateHTTPURL("WF2_URL", c.Workflow.URL); err != nil {
		errs = append(errs, err)
	}
	if c.Workflow.APIKey == "" {
		errs = append(errs, errors.New("WF2_API_KEY is required"))
	}

	if c.Auth.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required"))
	}

	if c.FMCSA.WebKey == "" {
		errs = append(errs, errors.New("FMC_WEB_KEY is required"))
	}
	if c.FMCSA.BaseURL != "" {
		if err := validateHTTPURL("FMCSA_BASE_URL", c.FMCSA.BaseURL); err != nil {
			errs = append(errs, err)
		}
	}
	if c.FMCSA.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("FMCSA_TIMEOUT must be positive, got %s", c.FMCSA.Timeout))
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func validateHTTPURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	return nil
}

func optionalInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func optionalDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 10s, got %q", key, v)
	}
	return d, nil
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
