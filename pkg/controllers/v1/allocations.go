package v1

import (
	"net/http"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationList)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocations)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", GetAllocation)
		r.PATCH("/:id", UpdateAllocation)
		r.DELETE("/:id", DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Allocation{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// createAllocation verifies that the allocation fits into the bank's
// balance and creates it. Both happen in one transaction so that
// concurrent creations cannot exceed the balance together.
func createAllocation(allocation *models.Allocation) error {
	return models.DB.Transaction(func(tx *gorm.DB) error {
		if err := allocation.Fits(tx); err != nil {
			return err
		}

		return tx.Create(allocation).Error
	})
}

// @Summary		Create allocations
// @Description	Creates new allocations. The allocations of a bank must not exceed its balance.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationCreateResponse
// @Failure		400			{object}	AllocationCreateResponse
// @Failure		404			{object}	AllocationCreateResponse
// @Failure		500			{object}	AllocationCreateResponse
// @Param			allocations	body		[]AllocationEditable	true	"Allocations"
// @Router			/v1/allocations [post]
func CreateAllocations(c *gin.Context) {
	var editables []AllocationEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationCreateResponse{}

	for _, editable := range editables {
		allocation := editable.model()
		err = createAllocation(&allocation)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAllocation(c, allocation)
		r.Data = append(r.Data, AllocationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationListResponse
// @Failure		400		{object}	AllocationListResponse
// @Failure		500		{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			goal	query	string	false	"Filter by goal ID"
// @Param			bank	query	string	false	"Filter by bank ID"
// @Param			offset	query	uint	false	"The offset of the first allocation returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of allocations to return. Defaults to 50."
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at ASC, id ASC").
		Where(&model, queryFields...)

	allocations, pagination, err := list[models.Allocation](q, filter.Offset, filter.Limit, slices.Contains(setFields, "Limit"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	data := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}

// @Summary		Update allocation
// @Description	Updates an allocation. Only values to be updated need to be specified. The allocations of a bank must not exceed its balance.
// @Tags			Allocations
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations/{id} [patch]
func UpdateAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var data AllocationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	// The allocation as it will be after the update
	updated := allocation
	if slices.Contains(updateFields, any("GoalID")) {
		updated.GoalID = data.GoalID
	}
	if slices.Contains(updateFields, any("BankID")) {
		updated.BankID = data.BankID
	}
	if slices.Contains(updateFields, any("Amount")) {
		updated.Amount = data.Amount
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := updated.BeforeSave(tx); err != nil {
			return err
		}

		if err := updated.Fits(tx); err != nil {
			return err
		}

		err := tx.Model(&allocation).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			return err
		}

		if !slices.Contains(updateFields, any("Amount")) {
			return nil
		}

		// Amount changes invalidate ledger reads in progress
		return tx.Model(&allocation).UpdateColumn("version", gorm.Expr("version + 1")).Error
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&allocation, "id = ?", allocation.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation
// @Tags			Allocations
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [delete]
func DeleteAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&allocation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
