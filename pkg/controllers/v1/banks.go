package v1

import (
	"net/http"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterBankRoutes registers the routes for banks with
// the RouterGroup that is passed.
func RegisterBankRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBankList)
		r.GET("", GetBanks)
		r.POST("", CreateBanks)
	}

	// Bank with ID
	{
		r.OPTIONS("/:id", OptionsBankDetail)
		r.GET("/:id", GetBank)
		r.PATCH("/:id", UpdateBank)
		r.DELETE("/:id", DeleteBank)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Success		204
// @Router			/v1/banks [options]
func OptionsBankList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [options]
func OptionsBankDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Bank{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create banks
// @Description	Creates new banks
// @Tags			Banks
// @Produce		json
// @Success		201		{object}	BankCreateResponse
// @Failure		400		{object}	BankCreateResponse
// @Failure		500		{object}	BankCreateResponse
// @Param			banks	body		[]BankEditable	true	"Banks"
// @Router			/v1/banks [post]
func CreateBanks(c *gin.Context) {
	var editables []BankEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BankCreateResponse{}

	for _, editable := range editables {
		bank := editable.model()
		err = models.DB.Create(&bank).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBank(c, bank)
		r.Data = append(r.Data, BankResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List banks
// @Description	Returns a list of banks
// @Tags			Banks
// @Produce		json
// @Success		200		{object}	BankListResponse
// @Failure		400		{object}	BankListResponse
// @Failure		500		{object}	BankListResponse
// @Router			/v1/banks [get]
// @Param			owner	query	string	false	"Filter by owner ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first bank returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of banks to return. Defaults to 50."
func GetBanks(c *gin.Context) {
	var filter BankQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BankListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&model, queryFields...)

	if filter.Search != "" {
		q = q.Where(models.DB.Where("name LIKE ?", "%"+filter.Search+"%").Or("note LIKE ?", "%"+filter.Search+"%"))
	}

	banks, pagination, err := list[models.Bank](q, filter.Offset, filter.Limit, slices.Contains(setFields, "Limit"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Bank, 0, len(banks))
	for _, bank := range banks {
		data = append(data, newBank(c, bank))
	}

	c.JSON(http.StatusOK, BankListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get bank
// @Description	Returns a specific bank
// @Tags			Banks
// @Produce		json
// @Success		200	{object}	BankResponse
// @Failure		400	{object}	BankResponse
// @Failure		404	{object}	BankResponse
// @Failure		500	{object}	BankResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [get]
func GetBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	var bank models.Bank
	err = models.DB.First(&bank, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	data := newBank(c, bank)
	c.JSON(http.StatusOK, BankResponse{Data: &data})
}

// @Summary		Update bank
// @Description	Updates a bank. Only values to be updated need to be specified. The balance must not be lower than the sum of the bank's allocations.
// @Tags			Banks
// @Produce		json
// @Success		200		{object}	BankResponse
// @Failure		400		{object}	BankResponse
// @Failure		404		{object}	BankResponse
// @Failure		500		{object}	BankResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bank	body		BankEditable	true	"Bank"
// @Router			/v1/banks/{id} [patch]
func UpdateBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	var bank models.Bank
	err = models.DB.First(&bank, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BankEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	var data BankEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&bank).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			return err
		}

		if !slices.Contains(updateFields, any("Balance")) {
			return nil
		}

		if data.Balance.IsNegative() {
			return models.ErrBankBalanceNegative
		}

		// Balance changes invalidate ledger reads in progress
		err = tx.Model(&bank).UpdateColumn("version", gorm.Expr("version + 1")).Error
		if err != nil {
			return err
		}

		allocated, err := bank.Allocated(tx)
		if err != nil {
			return err
		}

		if allocated.GreaterThan(data.Balance) {
			return errBalanceBelowAllocations
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&bank, "id = ?", bank.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBank(c, bank)
	c.JSON(http.StatusOK, BankResponse{Data: &apiResource})
}

// @Summary		Delete bank
// @Description	Deletes a bank and its allocations. Transactions are kept.
// @Tags			Banks
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [delete]
func DeleteBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var bank models.Bank
	err = models.DB.First(&bank, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&bank).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
