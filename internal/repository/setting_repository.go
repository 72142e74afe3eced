package repository

import (
	"errors"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository 键值设置表访问接口
type SettingRepository interface {
	GetByKey(key string) (*models.Setting, error)
	GetMany(keys []string) (map[string]models.JSON, error)
	Upsert(key string, value models.JSON) (*models.Setting, error)
}

// GormSettingRepository GORM 实现
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建设置仓库
func NewSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// GetByKey 读取单个设置，不存在时返回 nil, nil
// key 在 mysql 中是保留字，条件用结构体交给 gorm 引用
func (r *GormSettingRepository) GetByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where(&models.Setting{Key: key}).Take(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetMany 一次读取多个设置，缺失的键不出现在结果中
func (r *GormSettingRepository) GetMany(keys []string) (map[string]models.JSON, error) {
	result := make(map[string]models.JSON, len(keys))
	if len(keys) == 0 {
		return result, nil
	}
	var rows []models.Setting
	if err := r.db.Where(clause.IN{Column: clause.Column{Name: "key"}, Values: toInterfaces(keys)}).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.Key] = row.ValueJSON
	}
	return result, nil
}

// Upsert 整体覆盖设置值，依赖主键冲突在单条语句内完成
func (r *GormSettingRepository) Upsert(key string, value models.JSON) (*models.Setting, error) {
	setting := &models.Setting{Key: key, ValueJSON: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value_json"}),
	}).Create(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
