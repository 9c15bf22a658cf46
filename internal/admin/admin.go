package admin

import (
	"database/sql"
	"fmt"

	"github.com/harborwatch/backend/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// GetAdminAccount retrieves an admin account by username
func GetAdminAccount(db *sqlx.DB, username string) (*models.AdminAccount, error) {
	var account models.AdminAccount
	err := db.Get(&account, `SELECT username, token_hash, roles, created_at, updated_at FROM admin_accounts WHERE username=$1`, username)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// VerifyAdminToken checks if the provided token matches the stored hash
func VerifyAdminToken(hashedToken, plainToken string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedToken), []byte(plainToken))
	return err == nil
}

// CreateAdminAccount creates or updates an admin account (used for seeding)
func CreateAdminAccount(db *sqlx.DB, username, plainToken string, roles []string) error {
	hashedToken, err := bcrypt.GenerateFromPassword([]byte(plainToken), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash token: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admin_accounts (username, token_hash, roles, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE SET
			token_hash = EXCLUDED.token_hash,
			roles = EXCLUDED.roles,
			updated_at = NOW()
	`, username, string(hashedToken), pq.Array(roles))

	return err
}

// ValidateCredentials validates a username + token combination
func ValidateCredentials(db *sqlx.DB, username, token string) (*models.AdminAccount, error) {
	account, err := GetAdminAccount(db, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("admin account not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !VerifyAdminToken(account.TokenHash, token) {
		return nil, fmt.Errorf("invalid token")
	}
	return account, nil
}
