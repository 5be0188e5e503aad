package service

import (
	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

type ClientServices struct {
	APIKeys APIKeyPanel
}

func NewClientServices(keyStore adapter.KeyStoreAdapter, credentials models.Credentials, notifier StatusNotifier, log *logger.Logger) *ClientServices {
	return &ClientServices{
		APIKeys: NewAPIKeyPanel(keyStore, credentials, notifier, log),
	}
}
