package models

// Setting 系统设置表（键值对存储）
type Setting struct {
	Key       string `gorm:"type:varchar(64);primarykey" json:"key"` // 配置键
	ValueJSON JSON   `gorm:"type:json" json:"value"`                 // 配置值
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}

// BasicSettings 站点基础设置（settings.basic）
type BasicSettings struct {
	SiteName        string `json:"site_name"`
	Tagline         string `json:"tagline"`
	LogoURL         string `json:"logo_url"`
	FaviconURL      string `json:"favicon_url"`
	Currency        string `json:"currency"`
	CurrencySymbol  string `json:"currency_symbol"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// FooterSettings 页脚设置（settings.footer）
type FooterSettings struct {
	About            string `json:"about"`
	Copyright        string `json:"copyright"`
	ShowSocialLinks  bool   `json:"show_social_links"`
	ShowPaymentIcons bool   `json:"show_payment_icons"`
}

// ContactInfo 联系方式（settings.contact）
type ContactInfo struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	WhatsApp      string `json:"whatsapp"`
	BusinessHours string `json:"business_hours"`
	MapEmbedURL   string `json:"map_embed_url"`
}
