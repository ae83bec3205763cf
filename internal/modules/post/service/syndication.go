package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	"github.com/samber/lo"
)

// Syndicate re-exports posts as a feed rooted at baseURL, keeping the
// index order.
func Syndicate(posts []domain.Post, baseURL string) *feeds.Feed {
	baseURL = strings.TrimRight(baseURL, "/")

	feed := &feeds.Feed{
		Title:       "Latest Blog Posts",
		Link:        &feeds.Link{Href: baseURL + "/"},
		Description: "Posts collected by the blog feed aggregator",
		Id:          baseURL + "/",
	}

	feed.Items = lo.Map(posts, func(post domain.Post, i int) *feeds.Item {
		return postToFeedItem(post, i)
	})

	for _, post := range posts {
		if published, ok := post.PublishedAt(); ok && published.After(feed.Updated) {
			feed.Updated = published
		}
	}
	if feed.Updated.IsZero() {
		feed.Updated = time.Now().UTC()
	}
	feed.Created = feed.Updated

	return feed
}

func postToFeedItem(post domain.Post, index int) *feeds.Item {
	title := post.Title
	if title == "" {
		title = post.Link
	}

	id := post.Link
	if id == "" {
		id = fmt.Sprintf("post-%d", index)
	}

	item := &feeds.Item{
		Title: title,
		Link:  &feeds.Link{Href: post.Link},
		Id:    id,
	}
	if published, ok := post.PublishedAt(); ok {
		item.Created = published
	}
	return item
}
