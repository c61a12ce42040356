package utils

import (
	"strconv"

	"gorm.io/gorm"
)

// Pagination carries the resolved page metadata handed to templates.
type Pagination struct {
	Page       int
	TotalPages int
	PageSize   int
	Total      int64
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }
func (p Pagination) Prev() int     { return p.Page - 1 }
func (p Pagination) Next() int     { return p.Page + 1 }

// ResolvePage turns the raw page parameter into a valid page number.
// Anything that is not a positive integer resolves to page 1; a page past
// the end clamps to the last page. Out-of-range input is never an error.
func ResolvePage(raw string, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate counts the query, resolves the requested page against the total
// and loads that page into out. The ordering is passed separately because it
// must not take part in the COUNT.
func Paginate(query *gorm.DB, orderBy, rawPage string, pageSize int, out interface{}) (Pagination, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	page := ResolvePage(rawPage, totalPages)

	err := query.Session(&gorm.Session{}).
		Order(orderBy).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(out).Error
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{Page: page, TotalPages: totalPages, PageSize: pageSize, Total: total}, nil
}
