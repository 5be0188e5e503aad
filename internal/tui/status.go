// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// StatusBoard is the status-message capability of the host page. It keeps the
// latest message for the status bar and logs every message it receives.
// It is safe for concurrent use.
type StatusBoard struct {
	mu     sync.Mutex
	latest models.StatusMessage
	shown  bool

	now    func() time.Time
	logger *logger.Logger
}

func NewStatusBoard(log *logger.Logger) *StatusBoard {
	return &StatusBoard{
		now:    time.Now,
		logger: log.WithComponent("status_board"),
	}
}

// AddStatusMessage implements service.StatusNotifier.
func (s *StatusBoard) AddStatusMessage(message string, severity models.Severity) {
	s.mu.Lock()
	s.latest = models.StatusMessage{Message: message, Severity: severity, CreatedAt: s.now()}
	s.shown = true
	s.mu.Unlock()

	event := s.logger.Info()
	switch severity {
	case models.SeverityError:
		event = s.logger.Error()
	case models.SeverityWarning:
		event = s.logger.Warn()
	}
	event.Str("severity", string(severity)).Msg(message)
}

// Latest returns the message currently on the board.
func (s *StatusBoard) Latest() (models.StatusMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.shown
}

// Clear removes the current message from the board.
func (s *StatusBoard) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = models.StatusMessage{}
	s.shown = false
}
