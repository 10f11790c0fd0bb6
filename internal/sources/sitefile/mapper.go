package sitefile

import (
	"fmt"

	"github.com/Silverados/sitenav/internal/domain"
)

// Mapper converts a site file to a domain.Site
type Mapper struct {
	base func() *domain.Site
}

// NewMapper creates a mapper layering files over the document built by base.
// A nil base means files always stand alone.
func NewMapper(base func() *domain.Site) *Mapper {
	return &Mapper{base: base}
}

// Map converts file to a domain.Site. The result is not validated.
func (m *Mapper) Map(file *File) (*domain.Site, error) {
	if file == nil {
		return nil, fmt.Errorf("no site file to map")
	}

	out := &domain.Site{}
	if file.UsesBuiltin() && m.base != nil {
		out = m.base()
	}

	if file.Title != "" {
		out.Title = file.Title
	}
	if file.Description != "" {
		out.Description = file.Description
	}
	if file.LastUpdated != nil {
		out.LastUpdated = *file.LastUpdated
	}
	if len(file.Head) > 0 {
		out.Head = file.Head
	}
	if file.Extends != nil {
		out.Extends = file.Extends
	}
	if file.Vite != nil {
		out.Vite = file.Vite
	}

	if tc := file.ThemeConfig; tc != nil {
		mapTheme(&out.ThemeConfig, tc)
	}

	return out, nil
}

func mapTheme(dst *domain.ThemeConfig, tc *ThemeSection) {
	if len(tc.Nav) > 0 {
		dst.Nav = tc.Nav
	}
	if len(tc.Sidebar) > 0 {
		if dst.Sidebar == nil {
			dst.Sidebar = make(domain.Sidebar, len(tc.Sidebar))
		}
		// file wins per key
		for key, items := range tc.Sidebar {
			dst.Sidebar[key] = items
		}
	}
	if len(tc.SocialLinks) > 0 {
		dst.SocialLinks = tc.SocialLinks
	}
	if tc.Footer != nil {
		dst.Footer = tc.Footer
	}
	if tc.EditLink != nil {
		dst.EditLink = tc.EditLink
	}
	if tc.LastUpdatedText != "" {
		dst.LastUpdatedText = tc.LastUpdatedText
	}
	if tc.Search != nil {
		dst.Search = tc.Search
	}
}
