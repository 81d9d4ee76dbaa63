package v1

import (
	"gorm.io/gorm"
)

// defaultLimit is the number of resources returned when the limit is not set.
const defaultLimit = 50

// list returns one window of the resources matched by q together with
// the pagination information. A negative limit returns all resources.
func list[T any](q *gorm.DB, offset uint, limit int, limitSet bool) ([]T, *Pagination, error) {
	if !limitSet {
		limit = defaultLimit
	}

	var resources []T
	err := q.Offset(int(offset)).Limit(limit).Find(&resources).Error
	if err != nil {
		return nil, nil, err
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		return nil, nil, err
	}

	return resources, &Pagination{
		Count:  len(resources),
		Total:  count,
		Offset: offset,
		Limit:  limit,
	}, nil
}
