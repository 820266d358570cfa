package models

// Setting is one key/value row of the global configuration. Values are stored
// JSON-encoded so strings and objects share the same column.
type Setting struct {
	BaseModel
	Key   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

// SocialLinks holds the optional outbound profile links.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Email    string `json:"email,omitempty"`
}

// GlobalSettings is the fully-resolved configuration object assembled from the
// settings rows. Every field is populated; keys absent from storage resolve to
// the defaults below, never to null.
type GlobalSettings struct {
	SiteName        string      `json:"siteName"`
	Logo            string      `json:"logo,omitempty"`
	Favicon         string      `json:"favicon,omitempty"`
	PrimaryColor    string      `json:"primaryColor"`
	AccentColor     string      `json:"accentColor"`
	BackgroundColor string      `json:"backgroundColor"`
	FooterText      string      `json:"footerText"`
	SocialLinks     SocialLinks `json:"socialLinks"`
	DefaultSeoTitle string      `json:"defaultSeoTitle,omitempty"`
	DefaultSeoDesc  string      `json:"defaultSeoDesc,omitempty"`
}

// Setting keys recognized by the resolver.
const (
	SettingKeySiteName        = "siteName"
	SettingKeyLogo            = "logo"
	SettingKeyFavicon         = "favicon"
	SettingKeyPrimaryColor    = "primaryColor"
	SettingKeyAccentColor     = "accentColor"
	SettingKeyBackgroundColor = "backgroundColor"
	SettingKeyFooterText      = "footerText"
	SettingKeySocialLinks     = "socialLinks"
	SettingKeyDefaultSeoTitle = "defaultSeoTitle"
	SettingKeyDefaultSeoDesc  = "defaultSeoDesc"
)

// DefaultGlobalSettings returns the hardcoded defaults used whenever a key is
// missing from storage or the store is unreachable.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		SiteName:        "Portfolio",
		PrimaryColor:    "#3b82f6",
		AccentColor:     "#8b5cf6",
		BackgroundColor: "#ffffff",
		FooterText:      "© 2024 Portfolio. All rights reserved.",
		SocialLinks:     SocialLinks{},
	}
}
