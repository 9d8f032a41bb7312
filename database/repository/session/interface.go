package sessionRepo

import "marhaba/models"

// SessionRepository is the durable slot holding the serialized current-user
// record. Load returns (nil, nil) when the slot is empty, which the identity
// store reads as the anonymous state.
type SessionRepository interface {
	// Save writes the session record, replacing any prior one.
	Save(s *models.Session) error
	// Load reads the stored session record, or (nil, nil) when absent.
	Load() (*models.Session, error)
	// Clear empties the slot; clearing an already-empty slot is a no-op.
	Clear() error
}
