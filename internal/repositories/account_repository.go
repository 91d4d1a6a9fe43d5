package repositories

import (
	"errors"
	"fmt"

	"cardledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrPositionMismatch = errors.New("position list does not match stored accounts")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves one of the user's accounts by ID
func (r *accountRepository) GetByID(userID, accountID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByUserID retrieves all accounts for a user, ordered by the requested
// sort field. Unrecognized fields fall back to position ascending.
func (r *accountRepository) GetByUserID(userID uuid.UUID, sortBy string) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).
		Order(models.SortOrderClause(sortBy)).
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// GetLinkedByUserID retrieves the user's accounts that carry bank-link credentials
func (r *accountRepository) GetLinkedByUserID(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ? AND feed_access_token <> ''", userID).
		Order("position ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get linked accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// Delete soft deletes one of the user's accounts
func (r *accountRepository) Delete(userID, accountID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", accountID, userID).Delete(&models.Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// CountByUserID counts the user's accounts
func (r *accountRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// NextPosition returns the position for a new account: one past the current
// maximum, so new records land at the end of the manual ordering.
func (r *accountRepository) NextPosition(userID uuid.UUID) (int, error) {
	var result struct {
		MaxPosition *int
	}

	if err := r.db.Model(&models.Account{}).
		Select("MAX(position) as max_position").
		Where("user_id = ?", userID).
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to determine next position: %w", err)
	}

	if result.MaxPosition == nil {
		return 0, nil
	}
	return *result.MaxPosition + 1, nil
}

// UpdatePositions rewrites the manual ordering in one transaction. The map
// must cover exactly the user's accounts; a partial reorder is rejected so
// positions never drift out of a consistent set.
func (r *accountRepository) UpdatePositions(userID uuid.UUID, positions map[uuid.UUID]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count accounts for reorder: %w", err)
		}

		if int64(len(positions)) != count {
			return ErrPositionMismatch
		}

		for accountID, position := range positions {
			// UpdateColumn skips model hooks; full validation is pointless
			// for a position-only rewrite
			result := tx.Model(&models.Account{}).
				Where("id = ? AND user_id = ?", accountID, userID).
				UpdateColumn("position", position)
			if result.Error != nil {
				return fmt.Errorf("failed to update position: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrPositionMismatch
			}
		}

		return nil
	})
}
