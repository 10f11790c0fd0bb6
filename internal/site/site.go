// Package site assembles the complete blog configuration document from the
// built-in literals.
package site

import (
	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/navtree"
)

const (
	Title       = "Silverados"
	Description = "Silverados的个人博客"

	RepoURL         = "https://github.com/Silverados/Silverados.github.io"
	EditLinkPattern = RepoURL + "/edit/main/docs/:path"
)

// Default returns the built-in document. Each call builds a new value.
func Default() *domain.Site {
	return &domain.Site{
		Title:       Title,
		Description: Description,
		LastUpdated: true,
		Head: []domain.HeadTag{
			{Tag: "link", Attrs: map[string]string{"rel": "icon", "type": "image/png", "href": "/favicon2.ico"}},
		},
		Extends: BlogTheme(),
		Vite: &domain.ViteOptions{
			OptimizeDeps: &domain.OptimizeDeps{
				Include: []string{"element-plus"},
				Exclude: []string{"@sugarat/theme"},
			},
		},
		ThemeConfig: domain.ThemeConfig{
			Nav:     navtree.Nav(),
			Sidebar: navtree.Sidebar(),
			SocialLinks: []domain.SocialLink{
				{Icon: "github", Link: RepoURL},
			},
			Footer: &domain.Footer{Message: "Powered by Vitepress."},
			EditLink: &domain.EditLink{
				Pattern: EditLinkPattern,
				Text:    "Edit this page on GitHub",
			},
			LastUpdatedText: "上次更新的时间：",
			Search:          &domain.Search{Provider: "local"},
		},
	}
}

// BlogTheme returns the blog theme options the document extends.
func BlogTheme() *domain.BlogTheme {
	return &domain.BlogTheme{
		Author: "Silverados",
		Friend: []domain.FriendLink{
			{
				Nickname: "粥里有勺糖",
				Des:      "Vitepress theme",
				Avatar:   "https://img.cdn.sugarat.top/mdImg/MTY3NDk5NTE2NzAzMA==674995167030",
				URL:      "https://sugarat.top",
			},
			{
				Nickname: "Vitepress",
				Des:      "Vite & Vue Powered Static Site Generator",
				Avatar:   "https://img.cdn.sugarat.top/mdImg/MTY3NDk5NTI2NzY1Ng==674995267656",
				URL:      "https://vitepress.vuejs.org/",
			},
		},
		Recommend: &domain.Recommend{ShowSelf: true},
		Search:    "pagefind",
	}
}

// Builtin is the source that always yields Default.
type Builtin struct{}

func (Builtin) Name() string { return "builtin" }

func (Builtin) Load() (*domain.Site, error) { return Default(), nil }
