package service

import (
	"encoding/json"
	"strings"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// SettingService 单例设置服务（basic / footer / contact）
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// DefaultBasicSettings 站点基础设置默认值
func DefaultBasicSettings() models.BasicSettings {
	return models.BasicSettings{
		SiteName:       defaultStoreName,
		Currency:       constants.SiteCurrencyDefault,
		CurrencySymbol: constants.SiteCurrencySymbolDefault,
	}
}

// DefaultFooterSettings 页脚设置默认值
func DefaultFooterSettings() models.FooterSettings {
	return models.FooterSettings{
		ShowSocialLinks:  true,
		ShowPaymentIcons: true,
	}
}

// IsSettingKey 判断是否为支持的设置键
func IsSettingKey(key string) bool {
	switch key {
	case constants.SettingKeyBasic, constants.SettingKeyFooter, constants.SettingKeyContact:
		return true
	default:
		return false
	}
}

// GetBasic 获取站点基础设置
func (s *SettingService) GetBasic() (models.BasicSettings, error) {
	value := DefaultBasicSettings()
	if err := s.load(constants.SettingKeyBasic, &value); err != nil {
		return value, err
	}
	return normalizeBasicSettings(value), nil
}

// GetFooter 获取页脚设置
func (s *SettingService) GetFooter() (models.FooterSettings, error) {
	value := DefaultFooterSettings()
	err := s.load(constants.SettingKeyFooter, &value)
	return value, err
}

// GetContact 获取联系方式
func (s *SettingService) GetContact() (models.ContactInfo, error) {
	var value models.ContactInfo
	err := s.load(constants.SettingKeyContact, &value)
	return value, err
}

// Get 按键获取设置
func (s *SettingService) Get(key string) (interface{}, error) {
	switch key {
	case constants.SettingKeyBasic:
		return s.GetBasic()
	case constants.SettingKeyFooter:
		return s.GetFooter()
	case constants.SettingKeyContact:
		return s.GetContact()
	default:
		return nil, ErrNotFound
	}
}

// Update 按键整体覆盖设置，raw 为请求 JSON
func (s *SettingService) Update(key string, raw []byte) (interface{}, error) {
	var value interface{}
	switch key {
	case constants.SettingKeyBasic:
		basic := DefaultBasicSettings()
		if err := json.Unmarshal(raw, &basic); err != nil {
			return nil, ErrInvalidInput
		}
		basic = normalizeBasicSettings(basic)
		value = basic
	case constants.SettingKeyFooter:
		footer := DefaultFooterSettings()
		if err := json.Unmarshal(raw, &footer); err != nil {
			return nil, ErrInvalidInput
		}
		value = footer
	case constants.SettingKeyContact:
		var contact models.ContactInfo
		if err := json.Unmarshal(raw, &contact); err != nil {
			return nil, ErrInvalidInput
		}
		contact.Email = strings.TrimSpace(contact.Email)
		contact.Phone = strings.TrimSpace(contact.Phone)
		value = contact
	default:
		return nil, ErrNotFound
	}

	stored, err := toSettingJSON(value)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Upsert(key, stored); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return value, nil
}

// SiteSettings 前台站点配置所需的三组设置
type SiteSettings struct {
	Basic   models.BasicSettings
	Footer  models.FooterSettings
	Contact models.ContactInfo
}

// Snapshot 一次查询读取 basic / footer / contact，缺失项使用默认值
func (s *SettingService) Snapshot() (SiteSettings, error) {
	out := SiteSettings{
		Basic:  DefaultBasicSettings(),
		Footer: DefaultFooterSettings(),
	}
	values, err := s.repo.GetMany([]string{
		constants.SettingKeyBasic,
		constants.SettingKeyFooter,
		constants.SettingKeyContact,
	})
	if err != nil {
		return out, err
	}
	if err := decodeSetting(values[constants.SettingKeyBasic], &out.Basic); err != nil {
		return out, err
	}
	if err := decodeSetting(values[constants.SettingKeyFooter], &out.Footer); err != nil {
		return out, err
	}
	if err := decodeSetting(values[constants.SettingKeyContact], &out.Contact); err != nil {
		return out, err
	}
	out.Basic = normalizeBasicSettings(out.Basic)
	return out, nil
}

func (s *SettingService) load(key string, dest interface{}) error {
	setting, err := s.repo.GetByKey(key)
	if err != nil || setting == nil {
		return err
	}
	return decodeSetting(setting.ValueJSON, dest)
}

// decodeSetting 把存储的 JSON 覆盖到 dest 的默认值上
func decodeSetting(value models.JSON, dest interface{}) error {
	if len(value) == 0 {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func normalizeBasicSettings(value models.BasicSettings) models.BasicSettings {
	value.SiteName = strings.TrimSpace(value.SiteName)
	if value.SiteName == "" {
		value.SiteName = defaultStoreName
	}
	value.Currency = strings.ToUpper(strings.TrimSpace(value.Currency))
	if value.Currency == "" {
		value.Currency = constants.SiteCurrencyDefault
	}
	if strings.TrimSpace(value.CurrencySymbol) == "" {
		value.CurrencySymbol = constants.SiteCurrencySymbolDefault
	}
	return value
}

func toSettingJSON(value interface{}) (models.JSON, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	result := models.JSON{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}
