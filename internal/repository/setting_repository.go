package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
)

// SettingRepository stores key/value settings, with sensitive values
// fernet-encrypted at rest. Used for the narrative generator's API key so it
// never sits in the database as plaintext.
type SettingRepository struct {
	db  *sql.DB
	key *fernet.Key
}

// NewSettingRepository creates a SettingRepository. The key is the base64
// fernet key used for encrypted settings; it may be nil, in which case only
// plaintext settings can be stored or read.
func NewSettingRepository(db *sql.DB, fernetKey string) (*SettingRepository, error) {
	r := &SettingRepository{db: db}

	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		r.key = key
	}

	return r, nil
}

// Set stores a setting value, replacing any previous one.
// When encrypted is true the value is fernet-encrypted before storage.
func (r *SettingRepository) Set(name, value string, encrypted bool) error {
	stored := value
	if encrypted {
		if r.key == nil {
			return fmt.Errorf("cannot store encrypted setting %q: no fernet key configured", name)
		}
		token, err := fernet.EncryptAndSign([]byte(value), r.key)
		if err != nil {
			return fmt.Errorf("failed to encrypt setting %q: %w", name, err)
		}
		stored = string(token)
	}

	query := `
		INSERT INTO setting (id, name, value, is_encrypted, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			is_encrypted = excluded.is_encrypted,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.Exec(query, uuid.NewString(), name, stored, encrypted); err != nil {
		return fmt.Errorf("failed to store setting %q: %w", name, err)
	}
	return nil
}

// Get retrieves a setting value, decrypting it if it was stored encrypted.
// Returns apperrors.ErrSettingNotFound when the key has no value.
func (r *SettingRepository) Get(name string) (string, error) {
	var value string
	var encrypted bool

	query := `SELECT value, is_encrypted FROM setting WHERE name = ?`
	err := r.db.QueryRow(query, name).Scan(&value, &encrypted)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting %q: %w", name, err)
	}

	if !encrypted {
		return value, nil
	}
	if r.key == nil {
		return "", fmt.Errorf("cannot read encrypted setting %q: no fernet key configured", name)
	}

	// TTL 0: stored secrets do not expire.
	plain := fernet.VerifyAndDecrypt([]byte(value), 0*time.Second, []*fernet.Key{r.key})
	if plain == nil {
		return "", fmt.Errorf("failed to decrypt setting %q", name)
	}
	return string(plain), nil
}
