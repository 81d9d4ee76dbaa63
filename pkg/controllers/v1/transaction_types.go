package v1

import (
	"fmt"

	"github.com/fundkeeper/backend/pkg/history"
	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/fundkeeper/backend/pkg/shell"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10"`        // The transaction itself
	Return string `json:"return" example:"https://example.com/api/v1/transactions/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10/return"` // Returns money of this withdrawal
	Bank   string `json:"bank" example:"https://example.com/api/v1/banks/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11"`                 // The bank
	Goal   string `json:"goal" example:"https://example.com/api/v1/goals/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12"`                 // The goal
}

// Transaction is the API v1 representation of a Transaction in the history.
type Transaction struct {
	history.Row
	Selectable bool             `json:"selectable" example:"true"` // The transaction is a withdrawal and can be returned
	Links      TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, row history.Row) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		Row:        row,
		Selectable: row.Selectable(),
		Links: TransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, row.ID),
			Return: fmt.Sprintf("%s/v1/transactions/%s/return", url, row.ID),
			Bank:   fmt.Sprintf("%s/v1/banks/%s", url, row.BankID),
			Goal:   fmt.Sprintf("%s/v1/goals/%s", url, row.GoalID),
		},
	}
}

// fromModel builds the history row for a transaction that was just written.
// Names are resolved from the database, a failed lookup leaves them empty.
func fromModel(c *gin.Context, transaction models.Transaction) Transaction {
	row, err := history.Get(c.Request.Context(), models.DB, transaction.ID)
	if err != nil {
		row = history.Row{
			ID:          transaction.ID,
			CreatedAt:   transaction.CreatedAt,
			OwnerID:     transaction.OwnerID,
			BankID:      transaction.BankID,
			GoalID:      transaction.GoalID,
			ParentID:    transaction.ParentID,
			Amount:      transaction.Amount,
			Description: transaction.Description,
		}
	}

	return newTransaction(c, row)
}

type TransactionListResponse struct {
	Data       []Transaction   `json:"data"`                                           // List of transactions, newest first
	Error      *string         `json:"error" example:"the page must be 1 or greater"` // The error, if any occurred
	Pagination *PagePagination `json:"pagination"`                                     // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	OwnerID       string `form:"owner"`         // By owner ID
	Page          int    `form:"page"`          // The page to return, starting at 1. Defaults to 1.
	PageSize      int    `form:"pageSize"`      // Transactions per page. Defaults to 15, at most 100.
	WithdrawnOnly bool   `form:"withdrawnOnly"` // Only list withdrawals
}

// options returns the history options for the filter.
func (f TransactionQueryFilter) options() (history.Options, error) {
	owner, err := uuid.Parse(f.OwnerID)
	if f.OwnerID == "" {
		owner, err = uuid.Nil, nil
	}
	if err != nil {
		return history.Options{}, fmt.Errorf("owner: %w", err)
	}

	page := f.Page
	if page == 0 {
		page = 1
	}

	return history.Options{
		OwnerID:       owner,
		Page:          page,
		PageSize:      f.PageSize,
		WithdrawnOnly: f.WithdrawnOnly,
	}, nil
}

type ReturnRequest struct {
	Amount  decimal.Decimal `json:"amount" example:"50" minimum:"0.00000001"` // Amount to return, at most the withdrawn amount
	Confirm bool            `json:"confirm" example:"true"`                   // Confirms the return. Unconfirmed returns are cancelled.
}

type Return struct {
	Returned  decimal.Decimal `json:"returned" example:"50"` // The amount given back to the allocation
	Remainder *Transaction    `json:"remainder"`             // Withdrawal for the amount that stays withdrawn, if any
}

type ReturnResponse struct {
	Data     *Return         `json:"data"`                                             // The result of the return
	Error    *string         `json:"error" example:"only withdrawals can be returned"` // The error, if any occurred
	Messages []shell.Message `json:"messages"`                                         // Notifications for the user
}

type ReturnBatchRequest struct {
	IDs     []uuid.UUID `json:"ids"`                    // IDs of the withdrawals to return in full
	Confirm bool        `json:"confirm" example:"true"` // Confirms the return. Unconfirmed returns are cancelled.
}

// ReturnGroup is a set of withdrawals from the same allocation returned together.
type ReturnGroup struct {
	BankID uuid.UUID       `json:"bankId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11"`
	GoalID uuid.UUID       `json:"goalId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12"`
	Total  decimal.Decimal `json:"total" example:"150"`
	IDs    []uuid.UUID     `json:"ids"`
}

func newReturnGroups(groups []ledger.Group) []ReturnGroup {
	r := make([]ReturnGroup, 0, len(groups))
	for _, g := range groups {
		r = append(r, ReturnGroup{
			BankID: g.BankID,
			GoalID: g.GoalID,
			Total:  g.Total,
			IDs:    g.IDs,
		})
	}

	return r
}

type ReturnBatch struct {
	Returned decimal.Decimal `json:"returned" example:"150"` // Sum over all returned groups
	Groups   []ReturnGroup   `json:"groups"`                 // Groups that were returned
	Failed   []ReturnGroup   `json:"failed"`                 // Groups that could not be returned
}

type ReturnBatchResponse struct {
	Data     *ReturnBatch    `json:"data"`                                                                   // The result of the return
	Error    *string         `json:"error" example:"the record was modified concurrently, please try again"` // The error, if any occurred
	Messages []shell.Message `json:"messages"`                                                               // Notifications for the user
}

type SelectionRequest struct {
	IDs           []uuid.UUID `json:"ids"`           // IDs of the selected transactions
	OwnerID       uuid.UUID   `json:"owner"`         // Owner of the listed transactions
	Page          int         `json:"page"`          // The page the selection was made on. Defaults to 1.
	PageSize      int         `json:"pageSize"`      // Transactions per page. Defaults to 15.
	WithdrawnOnly bool        `json:"withdrawnOnly"` // Only withdrawals are listed
	ToggleAll     bool        `json:"toggleAll"`     // Select all selectable transactions, or none if all are selected already
}

type Selection struct {
	history.Selection
	IDs           []uuid.UUID `json:"ids"`           // IDs of the selected transactions
	SelectableIDs []uuid.UUID `json:"selectableIds"` // IDs of all transactions on the page that can be selected
}

type SelectionResponse struct {
	Data  *Selection `json:"data"`                                           // Summary of the selection
	Error *string    `json:"error" example:"the page must be 1 or greater"` // The error, if any occurred
}
