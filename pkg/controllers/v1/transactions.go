package v1

import (
	"errors"
	"net/http"

	"github.com/fundkeeper/backend/pkg/history"
	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/fundkeeper/backend/pkg/shell"
	"github.com/fundkeeper/backend/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
	}

	// Batch operations
	{
		r.OPTIONS("/return", OptionsTransactionPost)
		r.POST("/return", ReturnTransactions)
		r.OPTIONS("/selection", OptionsTransactionPost)
		r.POST("/selection", SelectTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.OPTIONS("/:id/return", OptionsTransactionReturn)
		r.POST("/:id/return", ReturnTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/return [options]
// @Router			/v1/transactions/selection [options]
func OptionsTransactionPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Transaction{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id}/return [options]
func OptionsTransactionReturn(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List transactions
// @Description	Returns one page of transactions, newest first. Transactions of deleted banks and goals are labelled "Unknown Bank" and "Unknown Objective".
// @Tags			Transactions
// @Produce		json
// @Success		200				{object}	TransactionListResponse
// @Failure		400				{object}	TransactionListResponse
// @Failure		500				{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			owner			query	string	false	"Filter by owner ID"
// @Param			page			query	int		false	"The page to return, starting at 1. Defaults to 1."
// @Param			pageSize		query	int		false	"Transactions per page. Defaults to 15, at most 100."
// @Param			withdrawnOnly	query	bool	false	"Only list withdrawals"
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	opts, err := filter.options()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	page, err := history.Fetch(c.Request.Context(), models.DB, opts)
	if err != nil {
		s := err.Error()
		c.JSON(historyStatus(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Transaction, 0, len(page.Rows))
	for _, row := range page.Rows {
		data = append(data, newTransaction(c, row))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &PagePagination{
			Count:      len(data),
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	})
}

// historyStatus returns the status for an error of the history package.
func historyStatus(err error) int {
	if errors.Is(err, history.ErrInvalidPage) {
		return http.StatusBadRequest
	}

	return status(err)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	row, err := history.Get(c.Request.Context(), models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	data := newTransaction(c, row)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Return money
// @Description	Returns money of a withdrawal to its allocation. A partial return leaves a withdrawal for the remaining amount.
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	ReturnResponse
// @Failure		400		{object}	ReturnResponse
// @Failure		404		{object}	ReturnResponse
// @Failure		409		{object}	ReturnResponse
// @Failure		500		{object}	ReturnResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			return	body		ReturnRequest	true	"Return"
// @Router			/v1/transactions/{id}/return [post]
func ReturnTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReturnResponse{
			Error: &s,
		})
		return
	}

	var request ReturnRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReturnResponse{
			Error: &s,
		})
		return
	}

	flow, recorder := interactive(request.Confirm)
	result, err := flow.Return(c.Request.Context(), uri.ID.UUID, request.Amount)
	if err != nil {
		s := err.Error()
		c.JSON(ledgerStatus(err), ReturnResponse{
			Error:    &s,
			Messages: recorder.Messages(),
		})
		return
	}

	data := Return{Returned: result.Returned}
	if result.Remainder != nil {
		remainder := fromModel(c, *result.Remainder)
		data.Remainder = &remainder
	}

	c.JSON(http.StatusOK, ReturnResponse{
		Data:     &data,
		Messages: recorder.Messages(),
	})
}

// @Summary		Return money of several withdrawals
// @Description	Fully returns the withdrawals with the given IDs. Withdrawals from the same allocation are returned together, a failing allocation does not stop the others.
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	ReturnBatchResponse
// @Failure		400		{object}	ReturnBatchResponse
// @Failure		404		{object}	ReturnBatchResponse
// @Failure		409		{object}	ReturnBatchResponse
// @Failure		500		{object}	ReturnBatchResponse
// @Param			return	body		ReturnBatchRequest	true	"Withdrawals to return"
// @Router			/v1/transactions/return [post]
func ReturnTransactions(c *gin.Context) {
	var request ReturnBatchRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReturnBatchResponse{
			Error: &s,
		})
		return
	}

	if len(request.IDs) == 0 {
		s := errNoTransactionIDs.Error()
		c.JSON(http.StatusBadRequest, ReturnBatchResponse{
			Error: &s,
		})
		return
	}

	// Declined before the total for the confirmation is read
	if !request.Confirm {
		s := ledger.ErrCancelled.Error()
		c.JSON(http.StatusBadRequest, ReturnBatchResponse{
			Data:     &ReturnBatch{Returned: decimal.Zero, Groups: []ReturnGroup{}, Failed: []ReturnGroup{}},
			Error:    &s,
			Messages: []shell.Message{},
		})
		return
	}

	// The total shown in the confirmation
	transactions, err := store.New(models.DB).GetTransactions(c.Request.Context(), request.IDs)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReturnBatchResponse{
			Error: &s,
		})
		return
	}

	total := decimal.Zero
	for _, group := range ledger.GroupWithdrawals(transactions) {
		total = total.Add(group.Total)
	}

	flow, recorder := interactive(request.Confirm)
	result, err := flow.ReturnBatch(c.Request.Context(), request.IDs, total)

	data := ReturnBatch{
		Returned: result.Returned,
		Groups:   newReturnGroups(result.Groups),
		Failed:   newReturnGroups(result.Failed),
	}

	if err != nil {
		s := err.Error()

		// Groups that were returned stay returned
		httpStatus := ledgerStatus(err)
		if len(result.Groups) > 0 {
			httpStatus = http.StatusOK
		}

		c.JSON(httpStatus, ReturnBatchResponse{
			Data:     &data,
			Error:    &s,
			Messages: recorder.Messages(),
		})
		return
	}

	c.JSON(http.StatusOK, ReturnBatchResponse{
		Data:     &data,
		Messages: recorder.Messages(),
	})
}

// @Summary		Summarize a selection
// @Description	Returns the total and count of the selected withdrawals on a page of the transaction history, together with all IDs that can be selected on it.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	SelectionResponse
// @Failure		400			{object}	SelectionResponse
// @Failure		500			{object}	SelectionResponse
// @Param			selection	body		SelectionRequest	true	"Selection"
// @Router			/v1/transactions/selection [post]
func SelectTransactions(c *gin.Context) {
	var request SelectionRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SelectionResponse{
			Error: &s,
		})
		return
	}

	page := request.Page
	if page == 0 {
		page = 1
	}

	rows, err := history.Fetch(c.Request.Context(), models.DB, history.Options{
		OwnerID:       request.OwnerID,
		Page:          page,
		PageSize:      request.PageSize,
		WithdrawnOnly: request.WithdrawnOnly,
	})
	if err != nil {
		s := err.Error()
		c.JSON(historyStatus(err), SelectionResponse{
			Error: &s,
		})
		return
	}

	ids := request.IDs
	if request.ToggleAll {
		ids = history.ToggleAll(rows.Rows, ids)
	}

	selectable := history.SelectableIDs(rows.Rows)
	selected := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if slices.Contains(selectable, id) && !slices.Contains(selected, id) {
			selected = append(selected, id)
		}
	}

	c.JSON(http.StatusOK, SelectionResponse{
		Data: &Selection{
			Selection:     history.Select(rows.Rows, selected),
			IDs:           selected,
			SelectableIDs: selectable,
		},
	})
}
