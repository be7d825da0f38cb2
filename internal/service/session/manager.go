// Package session implements the access-portal gate: a shared access code
// plus a signed-in visitor log. It is a preview gate, not an authentication
// system.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/domain/models"
)

// ErrAccessDenied is returned when the submitted access code is wrong.
var ErrAccessDenied = errors.New("invalid access code")

// ErrUnknownToken is returned when a token does not match a live session.
var ErrUnknownToken = errors.New("unknown session token")

// AccessInfo records who signed in through the portal and why.
type AccessInfo struct {
	Name      string
	Email     string
	Company   string
	Purpose   string
	Timestamp time.Time
}

// Manager tracks live sessions keyed by opaque token.
type Manager struct {
	mu         sync.RWMutex
	sessions   map[string]AccessInfo
	accessCode string
	logger     *zap.Logger
	now        func() time.Time
}

// NewManager creates a session manager guarding access with the given code.
func NewManager(accessCode string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		sessions:   make(map[string]AccessInfo),
		accessCode: accessCode,
		logger:     logger,
		now:        time.Now,
	}
}

// Login checks the access code and issues a session token. The request's
// required fields are validated by the transport layer before this is called.
func (m *Manager) Login(req models.LoginRequest) (string, error) {
	if req.AccessCode != m.accessCode {
		return "", ErrAccessDenied
	}

	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = AccessInfo{
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Purpose:   req.Purpose,
		Timestamp: m.now(),
	}
	m.mu.Unlock()

	m.logger.Info("access granted",
		zap.String("name", req.Name),
		zap.String("purpose", req.Purpose))

	return token, nil
}

// Validate returns the access info for a live session token.
func (m *Manager) Validate(token string) (AccessInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info, ok := m.sessions[token]
	if !ok {
		return AccessInfo{}, ErrUnknownToken
	}
	return info, nil
}

// Logout ends the session for the given token.
func (m *Manager) Logout(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[token]; !ok {
		return ErrUnknownToken
	}
	delete(m.sessions, token)
	return nil
}
