// Package history lists the transactions of an owner for display.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fundkeeper/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 15
	MaxPageSize     = 100

	// Labels for references to deleted records
	UnknownBank = "Unknown Bank"
	UnknownGoal = "Unknown Objective"
)

var ErrInvalidPage = errors.New("the page must be 1 or greater")

type Options struct {
	OwnerID       uuid.UUID // Only transactions of this owner. All owners when unset.
	Page          int       // 1-based page number
	PageSize      int       // Defaults to DefaultPageSize, capped at MaxPageSize
	WithdrawnOnly bool      // Only list withdrawals
}

// Row is a transaction together with the names of its bank and goal.
type Row struct {
	ID          uuid.UUID       `json:"id" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"`
	OwnerID     uuid.UUID       `json:"ownerId" example:"0192f1a6-0000-7000-8000-000000000001"`
	BankID      uuid.UUID       `json:"bankId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11"`
	GoalID      uuid.UUID       `json:"goalId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12"`
	ParentID    *uuid.UUID      `json:"parentId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f13"`
	Amount      decimal.Decimal `json:"amount" example:"-150"`
	Description string          `json:"description" example:"New tent"`
	BankName    string          `json:"bankName" example:"Checking"`
	GoalName    string          `json:"goalName" example:"Vacation"`
}

// Selectable reports whether the row can be selected for a batch return.
func (r Row) Selectable() bool {
	return r.Amount.IsNegative()
}

type Page struct {
	Rows       []Row
	Total      int64 // Number of transactions matching the filter on all pages
	Page       int
	PageSize   int
	TotalPages int
}

// Fetch returns one page of transactions, newest first.
//
// Transactions created at the same time are ordered by their ID, which
// is time ordered as well. This keeps the page windows stable.
func Fetch(ctx context.Context, db *gorm.DB, opts Options) (Page, error) {
	if opts.Page < 1 {
		return Page{}, ErrInvalidPage
	}

	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	size = min(size, MaxPageSize)

	filtered := func() *gorm.DB {
		q := db.WithContext(ctx).Model(&models.Transaction{})

		if opts.OwnerID != uuid.Nil {
			q = q.Where("transactions.owner_id = ?", opts.OwnerID)
		}

		if opts.WithdrawnOnly {
			q = q.Where("transactions.amount < 0")
		}

		return q
	}

	var total int64
	err := filtered().Count(&total).Error
	if err != nil {
		return Page{}, err
	}

	totalPages := (total + int64(size) - 1) / int64(size)
	page := Page{
		Rows:       make([]Row, 0, size),
		Total:      total,
		Page:       opts.Page,
		PageSize:   size,
		TotalPages: int(totalPages),
	}

	// Pages after the last one are empty. Their offset may not fit an int.
	if int64(opts.Page-1) >= totalPages {
		return page, nil
	}

	rows := page.Rows
	err = labelled(filtered()).
		Order("transactions.created_at DESC").
		Order("transactions.id DESC").
		Offset((opts.Page - 1) * size).
		Limit(size).
		Scan(&rows).Error
	if err != nil {
		return Page{}, err
	}

	for i := range rows {
		rows[i].CreatedAt = rows[i].CreatedAt.In(time.UTC)
	}

	page.Rows = rows
	return page, nil
}

// labelled selects the row columns and resolves bank and goal names.
func labelled(q *gorm.DB) *gorm.DB {
	return q.
		Select("transactions.id, transactions.created_at, transactions.owner_id, transactions.bank_id, transactions.goal_id, transactions.parent_id, transactions.amount, transactions.description, COALESCE(banks.name, ?) AS bank_name, COALESCE(goals.name, ?) AS goal_name", UnknownBank, UnknownGoal).
		Joins("LEFT JOIN banks ON banks.id = transactions.bank_id").
		Joins("LEFT JOIN goals ON goals.id = transactions.goal_id")
}

// Get returns the row for a single transaction.
func Get(ctx context.Context, db *gorm.DB, id uuid.UUID) (Row, error) {
	var rows []Row
	err := labelled(db.WithContext(ctx).Model(&models.Transaction{})).
		Where("transactions.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return Row{}, err
	}

	if len(rows) == 0 {
		return Row{}, fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	}

	row := rows[0]
	row.CreatedAt = row.CreatedAt.In(time.UTC)
	return row, nil
}

// Selection summarizes the rows selected for a batch return.
type Selection struct {
	AllSelected bool            `json:"allSelected"` // Every selectable row is selected. False if no row is selectable.
	Total       decimal.Decimal `json:"total"`       // Sum of the absolute amounts of the selected rows
	Count       int             `json:"count"`       // Number of selected rows
}

// Select computes the Selection for the rows with the given IDs.
// IDs of rows that are not selectable or not in rows are ignored.
func Select(rows []Row, ids []uuid.UUID) Selection {
	selected := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	s := Selection{Total: decimal.Zero}
	selectable := 0
	for _, r := range rows {
		if !r.Selectable() {
			continue
		}
		selectable++

		if selected[r.ID] {
			selected[r.ID] = false
			s.Count++
			s.Total = s.Total.Add(r.Amount.Abs())
		}
	}

	s.AllSelected = selectable > 0 && s.Count == selectable
	return s
}

// SelectableIDs returns the IDs of all selectable rows.
func SelectableIDs(rows []Row) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if r.Selectable() {
			ids = append(ids, r.ID)
		}
	}

	return ids
}

// ToggleAll returns the selection after the "select all" toggle was used:
// nothing when all selectable rows are selected, all of them otherwise.
func ToggleAll(rows []Row, ids []uuid.UUID) []uuid.UUID {
	if Select(rows, ids).AllSelected {
		return []uuid.UUID{}
	}

	return SelectableIDs(rows)
}
