package auth

import (
	sessionRepo "marhaba/database/repository/session"
	"marhaba/models"
	"marhaba/utils"
)

// AuthService is the identity store. It holds at most one current user record
// and has exactly two states: anonymous and authenticated. Signing in while
// already authenticated simply replaces the prior user; there is no session
// expiry and no token refresh.
type AuthService interface {
	// Login accepts any non-empty credentials and materializes the canned
	// record for the requested role. It blocks for the configured artificial
	// latency before the session becomes current.
	Login(email, password string, role models.UserRole) (*models.Session, error)
	// RegisterTourist creates and signs in a new tourist account, after the
	// artificial latency.
	RegisterTourist(marhabaPassID, name, email, password string) (*models.Tourist, error)
	// RegisterProvider creates and signs in a new provider account, after the
	// artificial latency.
	RegisterProvider(name, email, password, location string, languages []string) (*models.ServiceProvider, error)
	// Logout clears the current user and the durable slot. Synchronous.
	Logout() error

	// Current returns the current session record, or nil when anonymous.
	Current() *models.Session
	// CurrentUser returns the shared identity fields of the current user, or
	// nil when anonymous.
	CurrentUser() *models.User
	// IsAuthenticated reports whether a current user record is present.
	IsAuthenticated() bool
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	SessionRepo sessionRepo.SessionRepository
	Delayer     Delayer

	current *models.Session
}

// NewDefaultAuthService wires the identity store over the durable session
// slot and restores any stored session so a sign-in survives a restart. A
// missing session repository is a wiring mistake and aborts immediately.
func NewDefaultAuthService(sessions sessionRepo.SessionRepository, delayer Delayer) *DefaultAuthService {
	if sessions == nil {
		utils.GetLogger().Panic("auth service constructed without a session repository")
	}
	if delayer == nil {
		delayer = NoDelay{}
	}
	svc := &DefaultAuthService{
		SessionRepo: sessions,
		Delayer:     delayer,
	}
	svc.restore()
	return svc
}
