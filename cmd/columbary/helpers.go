// Shared helpers for columbary CLI commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/universal-funeral/columbary/internal/rest"
	"github.com/universal-funeral/columbary/internal/sqlite"
	"github.com/universal-funeral/columbary/pkg/registry"
	"github.com/universal-funeral/columbary/pkg/types"
)

// newLogger builds a console logger writing to stderr. Warnings and above
// only, unless --verbose is set.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// buildConfig assembles the validated Config from config.yaml and flags.
func buildConfig() (types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:    loadedConfig.GetString(cfgKeyBackend),
		GatewayURL: loadedConfig.GetString(cfgKeyGatewayURL),
		GatewayKey: loadedConfig.GetString(cfgKeyGatewayKey),
		DataDir:    dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// openGateway creates the gateway selected by the config. The returned
// close function is a no-op for the REST backend.
func openGateway(cfg types.Config) (types.Gateway, func() error, error) {
	switch cfg.Backend {
	case types.BackendREST:
		client, err := rest.NewClient(cfg.GatewayURL, cfg.GatewayKey)
		if err != nil {
			return nil, nil, err
		}
		return client, func() error { return nil }, nil
	case types.BackendSQLite:
		backend, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return backend, backend.Close, nil
	default:
		return nil, nil, types.ErrBackendUnknown
	}
}

// newService builds the registry service over an already-open gateway
// without loading the collections. Used by commands that do not read
// records, such as login.
func newService(gw types.Gateway) *registry.Service {
	return registry.New(gw, newLogger())
}

// openService opens the configured gateway, builds the registry service,
// and loads both collections. When the gateway is unreachable the service
// comes up in demo mode with the built-in sample data, and a banner is
// printed to stderr. The caller must invoke the returned close function.
func openService(ctx context.Context) (*registry.Service, func() error, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, nil, err
	}

	gw, closeFn, err := openGateway(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := registry.New(gw, newLogger())
	svc.Refresh(ctx)
	if !svc.Connected() {
		fmt.Fprintln(os.Stderr, "Demo mode: gateway unavailable, showing sample data. Changes are not persisted.")
	}
	return svc, closeFn, nil
}

// originNote renders a suffix for write confirmations so the user can tell
// a persisted write from a local fallback.
func originNote(origin registry.Origin) string {
	if origin == registry.OriginLocal {
		return " (saved locally only; gateway unavailable)"
	}
	return ""
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
