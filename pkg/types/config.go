// Package types defines the entity types, the Gateway interface, Config, and
// standard errors for the columbary record registry.
package types

import "errors"

// Config holds backend selection and parameters for opening a gateway.
type Config struct {
	Backend    string `json:"backend" yaml:"backend"`
	GatewayURL string `json:"gateway_url" yaml:"gateway_url"`
	GatewayKey string `json:"gateway_key" yaml:"gateway_key"`
	DataDir    string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendREST   = "rest"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrGatewayURLEmpty = errors.New("gateway URL must not be empty")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendREST:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == BackendREST && c.GatewayURL == "" {
		return ErrGatewayURLEmpty
	}
	return nil
}
