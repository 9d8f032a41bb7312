package auth

import (
	"fmt"
	"time"

	"marhaba/models"
	"marhaba/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// restore loads the durable slot at construction time. A missing or unreadable
// slot leaves the store anonymous.
func (s *DefaultAuthService) restore() {
	stored, err := s.SessionRepo.Load()
	if err != nil {
		utils.GetLogger().Warn("failed to restore stored session, starting anonymous", zap.Error(err))
		return
	}
	s.current = stored
}

// Login accepts any non-empty credentials (this is a demonstration stub, not
// an authentication protocol) and signs in the canned record for the role.
func (s *DefaultAuthService) Login(email, password string, role models.UserRole) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	var session *models.Session
	switch role {
	case models.RoleTourist:
		session = &models.Session{Role: models.RoleTourist, Tourist: demoTourist()}
	case models.RoleProvider:
		session = &models.Session{Role: models.RoleProvider, Provider: demoProvider()}
	default:
		return nil, fmt.Errorf("unsupported login role: %s", role)
	}

	s.Delayer.Delay()

	if err := s.commit(session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("user signed in",
		zap.String("role", string(role)), zap.String("userId", session.Account().ID))
	return session, nil
}

// RegisterTourist creates a new tourist account with a fresh id and signs it in.
func (s *DefaultAuthService) RegisterTourist(marhabaPassID, name, email, password string) (*models.Tourist, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if marhabaPassID == "" {
		return nil, fmt.Errorf("marhaba pass id is required")
	}

	s.Delayer.Delay()

	tourist := demoTourist()
	tourist.ID = uuid.New().String()
	tourist.Name = name
	tourist.Email = email
	tourist.MarhabaPassID = marhabaPassID
	tourist.JoinedDate = time.Now()

	session := &models.Session{Role: models.RoleTourist, Tourist: tourist}
	if err := s.commit(session); err != nil {
		return nil, err
	}
	return tourist, nil
}

// RegisterProvider creates a new provider account with a fresh id and signs it in.
func (s *DefaultAuthService) RegisterProvider(name, email, password, location string, languages []string) (*models.ServiceProvider, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if location == "" || len(languages) == 0 {
		return nil, fmt.Errorf("location and at least one language are required")
	}

	s.Delayer.Delay()

	provider := demoProvider()
	provider.ID = uuid.New().String()
	provider.Name = name
	provider.Email = email
	provider.Location = location
	provider.Languages = languages
	provider.JoinedDate = time.Now()

	session := &models.Session{Role: models.RoleProvider, Provider: provider}
	if err := s.commit(session); err != nil {
		return nil, err
	}
	return provider, nil
}

// Logout clears the current user and the durable slot. No artificial latency.
func (s *DefaultAuthService) Logout() error {
	s.current = nil
	if err := s.SessionRepo.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// commit persists the session and makes it current. Replacing an existing
// session without an explicit logout is permitted.
func (s *DefaultAuthService) commit(session *models.Session) error {
	if err := s.SessionRepo.Save(session); err != nil {
		utils.GetLogger().Error("failed to persist session", zap.Error(err))
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.current = session
	return nil
}

// Current returns the current session record, or nil when anonymous.
func (s *DefaultAuthService) Current() *models.Session {
	return s.current
}

// CurrentUser returns the current user's shared identity fields, or nil.
func (s *DefaultAuthService) CurrentUser() *models.User {
	return s.current.Account()
}

// IsAuthenticated reports whether a current user record is present.
func (s *DefaultAuthService) IsAuthenticated() bool {
	return s.current != nil
}
