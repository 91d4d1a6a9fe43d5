package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cardledger/internal/dto"
	"cardledger/internal/errors"
	"cardledger/internal/services"
)

// SummaryHandler serves the dashboard summary and payment schedule
type SummaryHandler struct {
	summaryService  services.SummaryServiceInterface
	scheduleService services.PaymentScheduleServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(
	summaryService services.SummaryServiceInterface,
	scheduleService services.PaymentScheduleServiceInterface,
) *SummaryHandler {
	return &SummaryHandler{
		summaryService:  summaryService,
		scheduleService: scheduleService,
	}
}

// GetSummary returns aggregate totals across the user's accounts
// @Summary Get dashboard totals
// @Description Aggregate credit limit, amount owed, available credit, minimum payments and rewards
// @Tags Summary
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Dashboard totals"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	totals, err := h.summaryService.GetTotals(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSummaryResponse(totals))
}

// GetUpcomingPayments returns the payment schedule for the next 30 days
// @Summary Get upcoming payments
// @Description List payments due within the next 30 days, sorted by due date
// @Tags Summary
// @Produce json
// @Success 200 {object} dto.UpcomingPaymentsResponse "Upcoming payments"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /payments/upcoming [get]
func (h *SummaryHandler) GetUpcomingPayments(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingIdentity)
	}

	payments, err := h.scheduleService.UpcomingPayments(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUpcomingPaymentsResponse(payments))
}
