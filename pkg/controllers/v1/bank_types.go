package v1

import (
	"fmt"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BankEditable struct {
	OwnerID uuid.UUID       `json:"ownerId" example:"0192f1a6-0000-7000-8000-000000000001"`                                                   // ID of the owner of the bank
	Name    string          `json:"name" example:"Checking" default:""`                                                                       // Name of the bank. Unique per owner.
	Note    string          `json:"note" example:"Joint account" default:""`                                                                  // A longer description for the bank
	Balance decimal.Decimal `json:"balance" example:"1000" default:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Money held in the bank
}

// model returns the database resource for the editable fields
func (editable BankEditable) model() models.Bank {
	return models.Bank{
		OwnerID: editable.OwnerID,
		Name:    editable.Name,
		Note:    editable.Note,
		Balance: editable.Balance,
	}
}

type BankLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/banks/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11"`                   // The bank itself
	Allocations  string `json:"allocations" example:"https://example.com/api/v1/allocations?bank=0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11"` // Allocations at this bank
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?owner=0192f1a6-0000-7000-8000-000000000001"`
}

// Bank is the API v1 representation of a Bank.
type Bank struct {
	models.DefaultModel
	BankEditable
	Version uint      `json:"version" example:"3"` // Incremented with every balance change
	Links   BankLinks `json:"links"`
}

func newBank(c *gin.Context, model models.Bank) Bank {
	url := c.GetString(string(models.DBContextURL))

	return Bank{
		DefaultModel: model.DefaultModel,
		BankEditable: BankEditable{
			OwnerID: model.OwnerID,
			Name:    model.Name,
			Note:    model.Note,
			Balance: model.Balance,
		},
		Version: model.Version,
		Links: BankLinks{
			Self:         fmt.Sprintf("%s/v1/banks/%s", url, model.ID),
			Allocations:  fmt.Sprintf("%s/v1/allocations?bank=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?owner=%s", url, model.OwnerID),
		},
	}
}

type BankListResponse struct {
	Data       []Bank      `json:"data"`                                                          // List of banks
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BankCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BankResponse `json:"data"`                                                          // List of created banks
}

func (b *BankCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BankResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BankResponse struct {
	Data  *Bank   `json:"data"`                                                          // Data for the bank
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BankQueryFilter struct {
	OwnerID string `form:"owner"`                      // By owner ID
	Name    string `form:"name"`                       // By name
	Search  string `form:"search" filterField:"false"` // By string in name or note
	Offset  uint   `form:"offset" filterField:"false"` // The offset of the first bank returned. Defaults to 0.
	Limit   int    `form:"limit" filterField:"false"`  // Maximum number of banks to return. Defaults to 50.
}

func (f BankQueryFilter) model() (models.Bank, error) {
	ownerID, err := httputil.UUIDFromString(f.OwnerID)
	if err != nil {
		return models.Bank{}, err
	}

	return models.Bank{
		OwnerID: ownerID,
		Name:    f.Name,
	}, nil
}
