package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/models"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Credentials is forwarded unchanged with every key store request.
	Credentials models.Credentials
}

// ClientAdapter holds the key store transport settings.
type ClientAdapter struct {
	// HTTPAddress is the key store address, "host:port" or a full URL.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
	// GetKeysPath is the path of the "get keys" endpoint.
	GetKeysPath string
	// SetKeysPath is the path of the "set keys" endpoint.
	SetKeysPath string
}

// ClientLog holds client logging settings.
type ClientLog struct {
	FilePath string
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Log     ClientLog
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Credentials: models.NewCredentials(cfg.App.Credentials),
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			GetKeysPath:    cfg.Adapter.GetKeysPath,
			SetKeysPath:    cfg.Adapter.SetKeysPath,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
		},
	}

	return clientCfg, clientCfg.validate()
}
