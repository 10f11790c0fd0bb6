// Package navtree builds the blog's navigation and sidebar trees.
//
// Every function returns a freshly allocated literal; callers may mutate the
// result without affecting later calls. Element order is menu order.
package navtree

import "github.com/Silverados/sitenav/internal/domain"

// Sidebar keys, as path prefixes relative to the site root.
const (
	KeyJavaDataStructure = "java/datastructure"
	KeyJavaAlgorithms    = "java/algorithms"
	KeyJavaNetty         = "java/netty"
	KeyMisc              = "misc"
	KeyBlog              = "blog"
)

// Nav returns the top navigation bar.
func Nav() []domain.NavItem {
	return []domain.NavItem{
		{
			Text: "Java",
			Items: []domain.NavItem{
				leaf("数据结构", "/java/datastructure/ArrayList"),
				leaf("Netty", "/java/netty/Netty性能优化_Native_Transports"),
				{Text: "算法", Link: "/java/algorithms/README", ActiveMatch: "/java/algorithms/"},
			},
		},
		leaf("杂谈", "/misc/README"),
	}
}

// Sidebar returns every sidebar section keyed by path prefix.
// The misc and blog sections share the same tree.
func Sidebar() domain.Sidebar {
	return domain.Sidebar{
		KeyJavaDataStructure: SidebarJavaDataStructure(),
		KeyJavaAlgorithms:    SidebarAlgorithms(),
		KeyJavaNetty:         SidebarNetty(),
		KeyMisc:              SidebarMisc(),
		KeyBlog:              SidebarMisc(),
	}
}

// SidebarJavaDataStructure returns the Java collections source-reading section.
func SidebarJavaDataStructure() []domain.NavItem {
	return []domain.NavItem{
		{
			Text: "数据结构源码分析",
			Items: []domain.NavItem{
				leaf("ArrayList", "/java/datastructure/ArrayList"),
				leaf("HashMap", "/java/datastructure/HashMap"),
			},
		},
	}
}

// SidebarAlgorithms returns the sorting algorithms section, initially expanded.
func SidebarAlgorithms() []domain.NavItem {
	return []domain.NavItem{
		{
			Text:      "排序算法",
			Collapsed: expanded(),
			Link:      "/java/algorithms/sorts/README",
			Items: []domain.NavItem{
				leaf("插入排序", "/java/algorithms/sorts/InsertSort"),
				leaf("冒泡排序", "/java/algorithms/sorts/BubbleSort"),
				leaf("选择排序", "/java/algorithms/sorts/SelectSort"),
				leaf("计数排序", "/java/algorithms/sorts/CountSort"),
				leaf("归并排序", "/java/algorithms/sorts/MergeSort"),
				leaf("快速排序", "/java/algorithms/sorts/QuickSort"),
			},
		},
	}
}

// SidebarMisc returns the blog-building section shared by misc and blog.
func SidebarMisc() []domain.NavItem {
	return []domain.NavItem{
		{
			Text:      "博客搭建",
			Collapsed: expanded(),
			Items: []domain.NavItem{
				leaf("Docsify博客搭建", "/blog/Docsify博客搭建.md"),
				leaf("Docsify博客定制化", "/blog/Docsify博客定制化.md"),
				leaf("博客体验", "/blog/博客体验.md"),
			},
		},
	}
}

// SidebarNetty returns the Netty articles section, initially expanded.
func SidebarNetty() []domain.NavItem {
	return []domain.NavItem{
		{
			Text:      "Netty",
			Collapsed: expanded(),
			Items: []domain.NavItem{
				leaf("Native Transports", "/java/netty/Netty性能优化_Native_Transports.md"),
				leaf("Netty TLS", "/java/netty/Netty_TLS"),
				leaf("Netty案例一 EchoServer", "/java/netty/demo/demo1_echo"),
				leaf("Netty ChannelOption", "/java/netty/Netty_ChannelOption"),
				leaf("Netty ChannelOption拓展", "/java/netty/Netty_ChannelOption_extend"),
			},
		},
	}
}

func leaf(text, link string) domain.NavItem {
	return domain.NavItem{Text: text, Link: link}
}

// expanded marks a group collapsible but initially open.
func expanded() *bool {
	b := false
	return &b
}
