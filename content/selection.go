package content

import (
	"sort"
	"strings"
	"time"
)

// DefaultPerPage is the listing page size when config does not set one
const DefaultPerPage = 10

// PageWindow describes one page of a listing
type PageWindow struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	Start      int
	End        int
}

// Paginate computes the window for page over n items. Out of range pages are
// clamped rather than erroring, an empty set yields a single empty page.
func Paginate(n, page, perPage int) PageWindow {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	totalPages := (n + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}

	return PageWindow{
		Page:       page,
		PerPage:    perPage,
		TotalItems: n,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Start:      start,
		End:        end,
	}
}

// SortByDateDesc orders posts newest first, in place
func SortByDateDesc(posts []BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}

// LivePosts keeps only published records
func LivePosts(posts []BlogPost) []BlogPost {
	out := make([]BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Live {
			out = append(out, p)
		}
	}
	return out
}

// FilterByTag keeps posts carrying tag, matched case-insensitively
func FilterByTag(posts []BlogPost, tag string) []BlogPost {
	if tag == "" {
		return posts
	}
	out := make([]BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByYear keeps posts published in year
func FilterByYear(posts []BlogPost, year int) []BlogPost {
	if year == 0 {
		return posts
	}
	out := make([]BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Date.Year() == year {
			out = append(out, p)
		}
	}
	return out
}

// HasTag reports whether the post carries tag (case-insensitive)
func (p BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func sharedTags(a, b []string) int {
	count := 0
	for _, t := range a {
		for _, u := range b {
			if strings.EqualFold(t, u) {
				count++
				break
			}
		}
	}
	return count
}

// Related picks up to max live posts to show under current: ranked by how
// many tags they share with it, ties broken by recency. When tag overlap
// alone cannot fill the quota the most recent remaining posts are used.
func Related(all []BlogPost, current BlogPost, max int) []BlogPost {
	if max <= 0 {
		return nil
	}

	type scored struct {
		post    BlogPost
		overlap int
	}

	candidates := make([]scored, 0, len(all))
	for _, p := range all {
		if !p.Live || p.Slug == current.Slug {
			continue
		}
		candidates = append(candidates, scored{post: p, overlap: sharedTags(p.Tags, current.Tags)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].overlap != candidates[j].overlap {
			return candidates[i].overlap > candidates[j].overlap
		}
		return candidates[i].post.Date.After(candidates[j].post.Date)
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	out := make([]BlogPost, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.post)
	}
	return out
}

// Years lists the distinct publication years present in posts, newest first
func Years(posts []BlogPost) []int {
	seen := map[int]bool{}
	for _, p := range posts {
		seen[p.Date.Year()] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// LiveEvents keeps only published events
func LiveEvents(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Live {
			out = append(out, e)
		}
	}
	return out
}

// SplitEvents partitions events around now: an event is upcoming while its
// start date (or end date, for multi-day events) has not passed. Upcoming
// events run soonest first, past events most recent first.
func SplitEvents(events []Event, now time.Time) (upcoming, past []Event) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, e := range events {
		last := e.StartDate
		if e.EndDate.After(last) {
			last = e.EndDate
		}
		if !last.Before(today) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartDate.After(past[j].StartDate)
	})

	return upcoming, past
}
