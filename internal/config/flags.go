package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses command-line arguments into a [StructuredConfig]. Unset
// flags leave their fields zero so they do not override other sources.
//
// Flags:
//
//	-a key store address, host:port or URL
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-get-keys-path path of the "get keys" endpoint
//	-set-keys-path path of the "set keys" endpoint
//	-credentials opaque credentials forwarded to the key store
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address        string
		requestTimeout time.Duration
		getKeysPath    string
		setKeysPath    string
		credentials    string
		logFile        string
		jsonConfigPath string
	)

	fs.StringVar(&address, "a", "", "Key store address host:port or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&getKeysPath, "get-keys-path", "", "Path of the get keys endpoint")
	fs.StringVar(&setKeysPath, "set-keys-path", "", "Path of the set keys endpoint")
	fs.StringVar(&credentials, "credentials", "", "Opaque credentials forwarded to the key store")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Credentials: credentials,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			GetKeysPath:    getKeysPath,
			SetKeysPath:    setKeysPath,
		},
		Log: Log{
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
