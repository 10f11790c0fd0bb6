package sitefile

import "github.com/Silverados/sitenav/internal/domain"

// File is the top-level structure of a site YAML file.
//
// It mirrors domain.Site. With Builtin unset or true, every field left empty
// inherits from the built-in document and sidebar sections merge per key.
type File struct {
	Builtin *bool `yaml:"builtin,omitempty"`

	Title       string              `yaml:"title,omitempty"`
	Description string              `yaml:"description,omitempty"`
	LastUpdated *bool               `yaml:"lastUpdated,omitempty"`
	Head        []domain.HeadTag    `yaml:"head,omitempty"`
	Extends     *domain.BlogTheme   `yaml:"extends,omitempty"`
	Vite        *domain.ViteOptions `yaml:"vite,omitempty"`
	ThemeConfig *ThemeSection       `yaml:"themeConfig,omitempty"`
}

// ThemeSection is the themeConfig block of a site file.
type ThemeSection struct {
	Nav             []domain.NavItem    `yaml:"nav,omitempty"`
	Sidebar         domain.Sidebar      `yaml:"sidebar,omitempty"`
	SocialLinks     []domain.SocialLink `yaml:"socialLinks,omitempty"`
	Footer          *domain.Footer      `yaml:"footer,omitempty"`
	EditLink        *domain.EditLink    `yaml:"editLink,omitempty"`
	LastUpdatedText string              `yaml:"lastUpdatedText,omitempty"`
	Search          *domain.Search      `yaml:"search,omitempty"`
}

// UsesBuiltin reports whether the file layers on the built-in document.
func (f *File) UsesBuiltin() bool {
	return f.Builtin == nil || *f.Builtin
}
