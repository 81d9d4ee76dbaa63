package v1

import (
	ez_uuid "github.com/fundkeeper/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

// Pagination for offset based lists.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// PagePagination for the page based transaction history.
type PagePagination struct {
	Count      int   `json:"count" example:"15"`     // The amount of records returned in this response
	Page       int   `json:"page" example:"2"`       // The page returned, starting at 1
	PageSize   int   `json:"pageSize" example:"15"`  // The maximum amount of records on one page
	Total      int64 `json:"total" example:"94"`     // The total number of records matching the query
	TotalPages int   `json:"totalPages" example:"7"` // The number of pages
}
