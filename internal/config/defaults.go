package config

import "time"

const (
	DefaultHTTPAddress    = "localhost:8000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultGetKeysPath    = "/api/get_api_keys"
	DefaultSetKeysPath    = "/api/set_api_keys"
	DefaultLogFilePath    = "logs"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			GetKeysPath:    DefaultGetKeysPath,
			SetKeysPath:    DefaultSetKeysPath,
		},
		Log: Log{
			FilePath: DefaultLogFilePath,
		},
	}
}
