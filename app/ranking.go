package app

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/classboard/classboard-be/model"
)

type SortKey string

const (
	SortHot SortKey = "hot"
	SortNew SortKey = "new"
	SortTop SortKey = "top"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortHot, SortNew, SortTop:
		return true
	}
	return false
}

// Hotness decays the upvote count by age: upvotes / (ageHours + 2)^1.5.
// The +2 offset keeps brand-new posts from dividing by zero and dampens
// the first couple of hours.
func Hotness(post *model.Post, now time.Time) float64 {
	ageHours := now.Sub(post.CreatedAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return float64(post.Upvotes) / math.Pow(ageHours+2, 1.5)
}

// FilterPosts keeps posts matching the tag filter ("all" or empty passes
// everything) and, when query is non-empty, containing it case-insensitively
// in the title or body.
func FilterPosts(posts []*model.Post, tagFilter string, query string) []*model.Post {
	query = strings.ToLower(strings.TrimSpace(query))
	filtered := make([]*model.Post, 0, len(posts))
	for _, post := range posts {
		if tagFilter != "" && tagFilter != "all" && string(post.Tag) != tagFilter {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(post.Title), query) &&
			!strings.Contains(strings.ToLower(post.Body), query) {
			continue
		}
		filtered = append(filtered, post)
	}
	return filtered
}

// SortPosts orders posts in place: pinned posts always first, then by the
// sort key. The sort is stable and ties fall back to createdAt then id, so
// the order is deterministic for fixed inputs.
func SortPosts(posts []*model.Post, key SortKey, now time.Time) {
	sort.SliceStable(posts, func(i, j int) bool {
		return postLess(posts[i], posts[j], key, now)
	})
}

func postLess(a, b *model.Post, key SortKey, now time.Time) bool {
	if a.IsPinned != b.IsPinned {
		return a.IsPinned
	}
	switch key {
	case SortTop:
		if a.Upvotes != b.Upvotes {
			return a.Upvotes > b.Upvotes
		}
	case SortHot:
		ha, hb := Hotness(a, now), Hotness(b, now)
		if ha != hb {
			return ha > hb
		}
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.Id < b.Id
}
