package services

import (
	"fmt"
	"math/rand"
	"time"

	"cardledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountSeeder struct {
	cardPool []cardProduct
	rng      *rand.Rand
}

type cardProduct struct {
	Name         string
	LimitMin     float64
	LimitMax     float64
	APRMin       float64
	APRMax       float64
	RewardsHeavy bool
}

const (
	minSeedPayment   = 25.00
	seedPaymentRatio = 0.02
)

// NewAccountSeeder creates a seeder that produces realistic card portfolios
// for development environments
func NewAccountSeeder() AccountSeederInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &accountSeeder{
		cardPool: initializeCardPool(),
		rng:      rand.New(source),
	}
}

// initializeCardPool builds a pool of recognizable card products with
// plausible limit and APR ranges
func initializeCardPool() []cardProduct {
	return []cardProduct{
		{"Chase Sapphire Preferred", 5000, 25000, 20.49, 27.49, true},
		{"Chase Freedom Unlimited", 1000, 12000, 19.49, 28.24, true},
		{"Amex Blue Cash Everyday", 2000, 15000, 18.24, 29.24, true},
		{"Amex Gold", 5000, 30000, 20.24, 28.24, true},
		{"Capital One Venture", 3000, 20000, 19.99, 29.99, true},
		{"Capital One Quicksilver", 500, 10000, 19.99, 29.99, false},
		{"Citi Double Cash", 1500, 15000, 18.24, 28.24, true},
		{"Citi Custom Cash", 500, 8000, 18.24, 28.24, false},
		{"Discover it Cash Back", 500, 10000, 17.24, 28.24, true},
		{"Wells Fargo Active Cash", 1000, 12000, 19.24, 29.24, false},
		{"Bank of America Customized Cash", 1000, 10000, 18.24, 28.24, false},
		{"US Bank Altitude Go", 1000, 10000, 18.24, 29.24, false},
		{"Apple Card", 250, 6000, 19.24, 29.49, false},
		{"Target RedCard", 300, 5000, 29.95, 29.95, false},
		{"Amazon Prime Visa", 500, 10000, 19.49, 27.49, true},
	}
}

// GenerateAccounts builds count unsaved accounts for the user, positioned
// sequentially starting at startPosition. Each account gets a random balance
// under its limit, a minimum payment derived from the balance, and either a
// statement cycle day or an explicit upcoming due date.
func (s *accountSeeder) GenerateAccounts(userID uuid.UUID, count, startPosition int) []*models.Account {
	accounts := make([]*models.Account, 0, count)
	used := make(map[int]bool)

	for i := 0; i < count; i++ {
		idx := s.rng.Intn(len(s.cardPool))
		// Avoid duplicate products while the pool has unused entries
		for used[idx] && len(used) < len(s.cardPool) {
			idx = s.rng.Intn(len(s.cardPool))
		}
		used[idx] = true

		accounts = append(accounts, s.generateAccount(userID, s.cardPool[idx], startPosition+i))
	}

	return accounts
}

func (s *accountSeeder) generateAccount(userID uuid.UUID, product cardProduct, position int) *models.Account {
	limit := s.randomAmount(product.LimitMin, product.LimitMax).Round(0)
	owed := s.randomAmount(0, limit.InexactFloat64()*0.85).Round(2)

	account := &models.Account{
		ID:            uuid.New(),
		UserID:        userID,
		AccountName:   product.Name,
		AccountNumber: fmt.Sprintf("****%04d", s.rng.Intn(10000)),
		CreditLimit:   limit,
		AmountOwed:    owed,
		InterestRate:  s.randomAmount(product.APRMin, product.APRMax).Round(2),
		Position:      position,
	}

	if owed.GreaterThan(decimal.Zero) {
		account.MinimumMonthlyPayment = s.minimumPayment(owed)
	}

	if product.RewardsHeavy {
		account.Rewards = s.randomAmount(0, 400).Round(2)
	}

	s.assignDueDate(account)

	if s.rng.Float64() < 0.3 {
		month := 1 + s.rng.Intn(12)
		account.LastUsedMonth = &month
	}

	if s.rng.Float64() < 0.5 {
		account.PaymentPreference = models.PaymentPreferenceMinimum
	} else {
		account.PaymentPreference = models.PaymentPreferenceFull
	}

	return account
}

// assignDueDate gives roughly half the accounts an explicit upcoming due
// date and the rest a statement cycle day, mirroring the mix of linked and
// manual accounts
func (s *accountSeeder) assignDueDate(account *models.Account) {
	if s.rng.Float64() < 0.5 {
		due := time.Now().AddDate(0, 0, 1+s.rng.Intn(28))
		due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
		account.NextPaymentDueDate = &due
		return
	}

	cycleDay := 1 + s.rng.Intn(28)
	account.StatementCycleDay = &cycleDay
}

func (s *accountSeeder) minimumPayment(owed decimal.Decimal) decimal.Decimal {
	minimum := owed.Mul(decimal.NewFromFloat(seedPaymentRatio)).Round(2)
	floor := decimal.NewFromFloat(minSeedPayment)
	if minimum.LessThan(floor) {
		if owed.LessThan(floor) {
			return owed
		}
		return floor
	}
	return minimum
}

func (s *accountSeeder) randomAmount(minValue, maxValue float64) decimal.Decimal {
	if maxValue <= minValue {
		return decimal.NewFromFloat(minValue)
	}
	return decimal.NewFromFloat(minValue + s.rng.Float64()*(maxValue-minValue))
}
