package repositories

import (
	"cardledger/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines persistence operations over credit accounts.
// Every method is scoped by an explicit user id; there is no ambient identity.
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(userID, accountID uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID, sortBy string) ([]models.Account, error)
	GetLinkedByUserID(userID uuid.UUID) ([]models.Account, error)
	Update(account *models.Account) error
	Delete(userID, accountID uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
	NextPosition(userID uuid.UUID) (int, error)
	UpdatePositions(userID uuid.UUID, positions map[uuid.UUID]int) error
}
