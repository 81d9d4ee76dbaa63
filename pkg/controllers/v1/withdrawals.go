package v1

import (
	"net/http"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/shell"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalRequest struct {
	GoalID      uuid.UUID       `json:"goalId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12"` // ID of the goal to withdraw from
	BankID      uuid.UUID       `json:"bankId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11"` // ID of the bank the money is taken from
	Amount      decimal.Decimal `json:"amount" example:"150" minimum:"0.00000001"`             // Amount to withdraw
	Description string          `json:"description" example:"New tent"`                        // A description of what the money is used for
	Confirm     bool            `json:"confirm" example:"true"`                                // Confirms the withdrawal. Unconfirmed withdrawals are cancelled.
}

type WithdrawalResponse struct {
	Data     *Transaction    `json:"data"`                                                                          // The recorded withdrawal
	Error    *string         `json:"error" example:"the amount exceeds the allocation of the goal at this bank"` // The error, if any occurred
	Messages []shell.Message `json:"messages"`                                                                      // Notifications for the user
}

// RegisterWithdrawalRoutes registers the routes for withdrawals with
// the RouterGroup that is passed.
func RegisterWithdrawalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsWithdrawals)
	r.POST("", CreateWithdrawal)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Withdrawals
// @Success		204
// @Router			/v1/withdrawals [options]
func OptionsWithdrawals(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Withdraw money
// @Description	Takes money out of the allocation of a goal at a bank. The bank balance and the allocation are lowered by the amount.
// @Tags			Withdrawals
// @Produce		json
// @Success		201			{object}	WithdrawalResponse
// @Failure		400			{object}	WithdrawalResponse
// @Failure		404			{object}	WithdrawalResponse
// @Failure		409			{object}	WithdrawalResponse
// @Failure		500			{object}	WithdrawalResponse
// @Param			withdrawal	body		WithdrawalRequest	true	"Withdrawal"
// @Router			/v1/withdrawals [post]
func CreateWithdrawal(c *gin.Context) {
	var request WithdrawalRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WithdrawalResponse{
			Error: &s,
		})
		return
	}

	flow, recorder := interactive(request.Confirm)
	transaction, err := flow.Withdraw(c.Request.Context(), ledger.WithdrawInput{
		GoalID:      request.GoalID,
		BankID:      request.BankID,
		Amount:      request.Amount,
		Description: request.Description,
	})
	if err != nil {
		s := err.Error()
		c.JSON(ledgerStatus(err), WithdrawalResponse{
			Error:    &s,
			Messages: recorder.Messages(),
		})
		return
	}

	data := fromModel(c, transaction)
	c.JSON(http.StatusCreated, WithdrawalResponse{
		Data:     &data,
		Messages: recorder.Messages(),
	})
}
