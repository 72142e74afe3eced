package repository

import (
	"errors"

	"gorm.io/gorm"
)

// defaultSortOrder CMS 类实体统一排序：权重升序，同权重按创建先后
const defaultSortOrder = "sort_order ASC, id ASC"

// applyPagination 应用分页参数，非法页码按第一页处理。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}

// applyActiveFilter 按启用状态过滤，nil 表示不过滤。
func applyActiveFilter(query *gorm.DB, column string, active *bool) *gorm.DB {
	if active == nil {
		return query
	}
	return query.Where(column+" = ?", *active)
}

// countAndFind 统计总数后分页查询，返回列表与总数。
func countAndFind[T any](query *gorm.DB, page, pageSize int, orderBy string) ([]T, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]T, 0)
	if total == 0 {
		return rows, 0, nil
	}
	query = applyPagination(query, page, pageSize)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// firstOrNil 按条件取第一条（主键升序），不存在时返回 nil, nil。
func firstOrNil[T any](query *gorm.DB, conds ...interface{}) (*T, error) {
	row := new(T)
	err := query.First(row, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
