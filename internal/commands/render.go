package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	postDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/i18n"
	"github.com/samber/lo"
)

type theme struct {
	Title  lipgloss.Style
	Date   lipgloss.Style
	Link   lipgloss.Style
	Notice lipgloss.Style
	Error  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Date:   lipgloss.NewStyle().Faint(true),
		Link:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// renderPosts lays out the view in index order, one card per post.
func renderPosts(view postDomain.View, locale domain.Locale) string {
	th := defaultTheme()

	switch view.Presentation() {
	case postDomain.PresentationEmpty:
		return th.Date.Render(i18n.Text(i18n.KeyNoPosts, locale))
	case postDomain.PresentationUnavailable:
		return th.Error.Render(i18n.Text(i18n.KeyUnavailable, locale))
	case postDomain.PresentationLoading:
		return th.Date.Render(i18n.Text(i18n.KeyLoading, locale))
	}

	cards := lo.Map(view.Posts, func(post postDomain.Post, i int) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			th.Title.Render(fmt.Sprintf("%d. %s", i+1, post.Title)),
			th.Date.Render(post.DisplayDate()),
			th.Link.Render(post.Link),
		)
	})
	return strings.Join(cards, "\n\n")
}
