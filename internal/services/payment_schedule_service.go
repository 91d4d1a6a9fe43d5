package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardledger/internal/models"
	"cardledger/internal/repositories"
)

// ProjectionWindowDays bounds how far ahead the schedule looks. Due dates
// beyond this horizon are not shown on the dashboard.
const ProjectionWindowDays = 30

const upcomingDateLayout = "Mon, Jan 2"

// ProjectNextDueDate derives the next payment due date from a statement
// cycle day. It tries the current month first, then the following month,
// clamping the cycle day to the last day of short months (a day-31 cycle
// lands on Feb 28/29, it never rolls into March). The projected date must
// fall on or after today and within the projection window, otherwise no
// date is returned.
func ProjectNextDueDate(cycleDay int, today time.Time) (time.Time, bool) {
	if !models.IsValidDayOfMonth(cycleDay) {
		return time.Time{}, false
	}

	today = startOfDay(today)

	for monthOffset := 0; monthOffset <= 1; monthOffset++ {
		candidate := dayInMonth(today.Year(), today.Month()+time.Month(monthOffset), cycleDay, today.Location())
		if candidate.Before(today) {
			continue
		}
		if models.DaysBetween(today, candidate) <= ProjectionWindowDays {
			return candidate, true
		}
	}

	return time.Time{}, false
}

// NextDueDate resolves the due date used for the upcoming payments list.
// An explicit NextPaymentDueDate on the account is authoritative and is
// never second-guessed by a cycle-day projection, even when it falls
// outside the window. Projection only runs when no explicit date is set.
func NextDueDate(account *models.Account, today time.Time) (time.Time, bool) {
	today = startOfDay(today)

	if account.NextPaymentDueDate != nil {
		dueDate := startOfDay(*account.NextPaymentDueDate)
		// Calendar comparison, so a UTC-stored date still counts as due
		// today in any process timezone.
		if models.DaysBetween(today, dueDate) < 0 {
			return time.Time{}, false
		}
		if models.DaysBetween(today, dueDate) > ProjectionWindowDays {
			return time.Time{}, false
		}
		return dueDate, true
	}

	if account.StatementCycleDay != nil {
		return ProjectNextDueDate(*account.StatementCycleDay, today)
	}

	return time.Time{}, false
}

// BuildUpcomingPayments assembles the payment schedule for the next
// ProjectionWindowDays days. Accounts with no determinable due date or a
// zero minimum payment are skipped rather than reported as errors. The
// result is sorted ascending by due date; the sort is stable so accounts
// sharing a due date keep their input order.
func BuildUpcomingPayments(accounts []models.Account, today time.Time) []models.UpcomingPayment {
	today = startOfDay(today)

	payments := make([]models.UpcomingPayment, 0, len(accounts))
	for i := range accounts {
		account := &accounts[i]

		if account.MinimumMonthlyPayment.LessThanOrEqual(decimal.Zero) {
			continue
		}

		dueDate, ok := NextDueDate(account, today)
		if !ok {
			continue
		}

		payments = append(payments, models.UpcomingPayment{
			AccountID:     account.ID,
			AccountName:   account.AccountName,
			Amount:        account.MinimumMonthlyPayment,
			DueDate:       dueDate,
			DayOfWeek:     dueDate.Weekday().String(),
			FormattedDate: dueDate.Format(upcomingDateLayout),
		})
	}

	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].DueDate.Before(payments[j].DueDate)
	})

	return payments
}

// dayInMonth returns midnight on the given day, clamped to the month's
// last day. time.Date normalizes month overflow, so December+1 lands in
// January of the next year.
func dayInMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// paymentScheduleService implements PaymentScheduleServiceInterface
type paymentScheduleService struct {
	accountRepo repositories.AccountRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	now         func() time.Time
}

// NewPaymentScheduleService creates the schedule service backed by the
// account repository. The clock defaults to time.Now.
func NewPaymentScheduleService(
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PaymentScheduleServiceInterface {
	return &paymentScheduleService{
		accountRepo: accountRepo,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// UpcomingPayments builds the schedule across all of the user's accounts.
func (s *paymentScheduleService) UpcomingPayments(userID uuid.UUID) ([]models.UpcomingPayment, error) {
	accounts, err := s.accountRepo.GetByUserID(userID, models.SortByPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for schedule: %w", err)
	}

	payments := BuildUpcomingPayments(accounts, s.now())

	s.metrics.RecordGauge("upcoming_payments", float64(len(payments)), nil)
	s.logger.Debug("built upcoming payments", "user_id", userID, "accounts", len(accounts), "payments", len(payments))

	return payments, nil
}
