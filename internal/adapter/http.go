package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpKeyStoreAdapter struct {
	client *utils.HTTPClient

	getKeysPath string
	setKeysPath string

	requestIDs *utils.UUIDGenerator
	validator  validators.Validator
	logger     *logger.Logger
}

// NewHTTPKeyStoreAdapter constructs the HTTP/JSON implementation of
// [KeyStoreAdapter]. It normalises the base URL from adapterCfg.HTTPAddress and
// configures the underlying client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPKeyStoreAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (KeyStoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	getKeysPath := adapterCfg.GetKeysPath
	if getKeysPath == "" {
		getKeysPath = config.DefaultGetKeysPath
	}
	setKeysPath := adapterCfg.SetKeysPath
	if setKeysPath == "" {
		setKeysPath = config.DefaultSetKeysPath
	}

	return &httpKeyStoreAdapter{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		getKeysPath: getKeysPath,
		setKeysPath: setKeysPath,
		requestIDs:  utils.NewUUIDGenerator(),
		validator:   validators.NewAPIKeysValidator(),
		logger:      log.WithComponent("key_store_adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetAPIKeys implements [KeyStoreAdapter]. It POSTs the credentials to the
// "get keys" path and decodes the api_keys list from the response body.
func (h *httpKeyStoreAdapter) GetAPIKeys(ctx context.Context, credentials models.Credentials) ([]models.APIKeyEntry, error) {
	req, requestID := h.request(ctx)

	resp, err := req.
		SetBody(models.GetAPIKeysRequest{Credentials: credentials}).
		Post(h.getKeysPath)
	if err != nil {
		return nil, fmt.Errorf("get api keys request: %w", err)
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("get api keys response")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result models.GetAPIKeysResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode get api keys response: %w", err)
	}
	if result.APIKeys == nil {
		return nil, ErrNoAPIKeys
	}

	return result.APIKeys, nil
}

// SetAPIKeys implements [KeyStoreAdapter]. It validates the list and POSTs it
// with the credentials to the "set keys" path. A nil list is sent as [].
func (h *httpKeyStoreAdapter) SetAPIKeys(ctx context.Context, credentials models.Credentials, apiKeys []models.APIKeyEntry) error {
	if apiKeys == nil {
		apiKeys = []models.APIKeyEntry{}
	}

	body := models.SetAPIKeysRequest{Credentials: credentials, APIKeys: apiKeys}
	if err := h.validator.Validate(ctx, body); err != nil {
		return fmt.Errorf("invalid set api keys request: %w", err)
	}

	req, requestID := h.request(ctx)

	resp, err := req.
		SetBody(body).
		Post(h.setKeysPath)
	if err != nil {
		return fmt.Errorf("set api keys request: %w", err)
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Int("entries", len(apiKeys)).
		Dur("elapsed", resp.Time()).
		Msg("set api keys response")

	return mapHTTPError(resp)
}

func (h *httpKeyStoreAdapter) request(ctx context.Context) (*resty.Request, string) {
	requestID := h.requestIDs.Generate()
	req := h.client.R().
		SetContext(ctx).
		SetHeader(utils.RequestIDHeader, requestID)
	return req, requestID
}
