package repositories

import (
	"testing"

	"cardledger/internal/database"
	"cardledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (AccountRepositoryInterface, *database.DB) {
	t.Helper()
	db := database.SetupTestDB(t)
	return NewAccountRepository(db.DB), db
}

func TestAccountRepository_CreateAndGetByID(t *testing.T) {
	repo, _ := setupRepo(t)
	userID := uuid.New()

	account := &models.Account{
		UserID:                userID,
		AccountName:           "Amex Blue Cash",
		CreditLimit:           decimal.NewFromInt(9000),
		AmountOwed:            decimal.NewFromInt(450),
		MinimumMonthlyPayment: decimal.NewFromInt(40),
	}
	require.NoError(t, repo.Create(account))
	require.NotEqual(t, uuid.Nil, account.ID)

	fetched, err := repo.GetByID(userID, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amex Blue Cash", fetched.AccountName)
	assert.True(t, fetched.CreditLimit.Equal(decimal.NewFromInt(9000)))
}

func TestAccountRepository_GetByID_WrongUser(t *testing.T) {
	repo, db := setupRepo(t)
	owner := uuid.New()
	account := database.CreateTestAccount(t, db, owner, "Visa Signature", 0)

	_, err := repo.GetByID(uuid.New(), account.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_GetByUserID_Sorting(t *testing.T) {
	repo, db := setupRepo(t)
	userID := uuid.New()

	a := database.CreateTestAccount(t, db, userID, "Zeta Card", 0)
	b := database.CreateTestAccount(t, db, userID, "Alpha Card", 1)
	b.AmountOwed = decimal.NewFromInt(4000)
	require.NoError(t, repo.Update(b))
	_ = a

	// Another user's accounts must never leak into the list
	database.CreateTestAccount(t, db, uuid.New(), "Other User Card", 0)

	byPosition, err := repo.GetByUserID(userID, models.SortByPosition)
	require.NoError(t, err)
	require.Len(t, byPosition, 2)
	assert.Equal(t, "Zeta Card", byPosition[0].AccountName)

	byName, err := repo.GetByUserID(userID, models.SortByName)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Card", byName[0].AccountName)

	byOwed, err := repo.GetByUserID(userID, models.SortByAmountOwed)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Card", byOwed[0].AccountName)

	// Garbage sort fields fall back to the position ordering
	fallback, err := repo.GetByUserID(userID, "nonsense")
	require.NoError(t, err)
	assert.Equal(t, "Zeta Card", fallback[0].AccountName)
}

func TestAccountRepository_GetLinkedByUserID(t *testing.T) {
	repo, db := setupRepo(t)
	userID := uuid.New()

	linked := database.CreateTestAccount(t, db, userID, "Linked Card", 0)
	linked.FeedAccessToken = "access-sandbox-xyz"
	linked.FeedAccountID = "plaid-acct-1"
	require.NoError(t, repo.Update(linked))

	database.CreateTestAccount(t, db, userID, "Manual Card", 1)

	accounts, err := repo.GetLinkedByUserID(userID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Linked Card", accounts[0].AccountName)
}

func TestAccountRepository_Delete(t *testing.T) {
	repo, db := setupRepo(t)
	userID := uuid.New()
	account := database.CreateTestAccount(t, db, userID, "Doomed Card", 0)

	require.NoError(t, repo.Delete(userID, account.ID))

	_, err := repo.GetByID(userID, account.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	// Deleting twice reports not found
	assert.ErrorIs(t, repo.Delete(userID, account.ID), ErrAccountNotFound)
}

func TestAccountRepository_NextPosition(t *testing.T) {
	repo, db := setupRepo(t)
	userID := uuid.New()

	pos, err := repo.NextPosition(userID)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	database.CreateTestAccount(t, db, userID, "First", 0)
	database.CreateTestAccount(t, db, userID, "Second", 4) // positions need not be contiguous

	pos, err = repo.NextPosition(userID)
	require.NoError(t, err)
	assert.Equal(t, 5, pos)
}

func TestAccountRepository_UpdatePositions(t *testing.T) {
	repo, db := setupRepo(t)
	userID := uuid.New()

	first := database.CreateTestAccount(t, db, userID, "First", 0)
	second := database.CreateTestAccount(t, db, userID, "Second", 1)

	err := repo.UpdatePositions(userID, map[uuid.UUID]int{
		first.ID:  1,
		second.ID: 0,
	})
	require.NoError(t, err)

	accounts, err := repo.GetByUserID(userID, models.SortByPosition)
	require.NoError(t, err)
	assert.Equal(t, "Second", accounts[0].AccountName)
	assert.Equal(t, "First", accounts[1].AccountName)
}

func TestAccountRepository_UpdatePositions_Mismatch(t *testing.T) {
	repo, db := setupRepo(t)
	userID := uuid.New()

	first := database.CreateTestAccount(t, db, userID, "First", 0)
	database.CreateTestAccount(t, db, userID, "Second", 1)

	// Partial reorders are rejected outright
	err := repo.UpdatePositions(userID, map[uuid.UUID]int{first.ID: 1})
	assert.ErrorIs(t, err, ErrPositionMismatch)

	// Unknown IDs are rejected even when the count matches
	err = repo.UpdatePositions(userID, map[uuid.UUID]int{
		first.ID:   0,
		uuid.New(): 1,
	})
	assert.ErrorIs(t, err, ErrPositionMismatch)
}

func TestAccountRepository_CountByUserID(t *testing.T) {
	repo, db := setupRepo(t)
	userID := uuid.New()

	count, err := repo.CountByUserID(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	database.CreateTestAccount(t, db, userID, "One", 0)
	database.CreateTestAccount(t, db, userID, "Two", 1)

	count, err = repo.CountByUserID(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
