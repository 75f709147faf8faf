package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func post(slug string, date time.Time, live bool, tags ...string) BlogPost {
	return BlogPost{ID: slug, Slug: slug, Title: slug, Date: date, Live: live, Tags: tags}
}

func TestPaginate(t *testing.T) {
	window := Paginate(25, 2, 10)

	assert.Equal(t, 2, window.Page)
	assert.Equal(t, 3, window.TotalPages)
	assert.Equal(t, 10, window.Start)
	assert.Equal(t, 20, window.End)
	assert.True(t, window.HasPrev)
	assert.True(t, window.HasNext)
}

func TestPaginateClampsOutOfRangePages(t *testing.T) {
	// beyond the last page
	window := Paginate(25, 99, 10)
	assert.Equal(t, 3, window.Page)
	assert.Equal(t, 20, window.Start)
	assert.Equal(t, 25, window.End)
	assert.False(t, window.HasNext)

	// below the first page
	window = Paginate(25, -4, 10)
	assert.Equal(t, 1, window.Page)
	assert.Equal(t, 0, window.Start)
	assert.False(t, window.HasPrev)
}

func TestPaginateEmptySet(t *testing.T) {
	window := Paginate(0, 1, 10)

	assert.Equal(t, 1, window.Page)
	assert.Equal(t, 1, window.TotalPages)
	assert.Equal(t, 0, window.Start)
	assert.Equal(t, 0, window.End)
	assert.False(t, window.HasPrev)
	assert.False(t, window.HasNext)
}

func TestPaginateDefaultsPerPage(t *testing.T) {
	window := Paginate(15, 1, 0)
	assert.Equal(t, DefaultPerPage, window.PerPage)
	assert.Equal(t, 2, window.TotalPages)
}

func TestLivePosts(t *testing.T) {
	posts := []BlogPost{
		post("a", day(2024, 1, 1), true),
		post("b", day(2024, 2, 1), false),
		post("c", day(2024, 3, 1), true),
	}

	live := LivePosts(posts)

	assert.Len(t, live, 2)
	assert.Equal(t, "a", live[0].Slug)
	assert.Equal(t, "c", live[1].Slug)
}

func TestSortByDateDesc(t *testing.T) {
	posts := []BlogPost{
		post("old", day(2022, 1, 1), true),
		post("new", day(2024, 6, 1), true),
		post("mid", day(2023, 3, 1), true),
	}

	SortByDateDesc(posts)

	assert.Equal(t, "new", posts[0].Slug)
	assert.Equal(t, "mid", posts[1].Slug)
	assert.Equal(t, "old", posts[2].Slug)
}

func TestFilterByTagIsCaseInsensitive(t *testing.T) {
	posts := []BlogPost{
		post("a", day(2024, 1, 1), true, "Python", "community"),
		post("b", day(2024, 2, 1), true, "packaging"),
	}

	filtered := FilterByTag(posts, "python")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].Slug)

	// empty tag keeps everything
	assert.Len(t, FilterByTag(posts, ""), 2)
}

func TestFilterByYear(t *testing.T) {
	posts := []BlogPost{
		post("a", day(2023, 12, 31), true),
		post("b", day(2024, 1, 1), true),
	}

	filtered := FilterByYear(posts, 2024)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].Slug)

	// year zero keeps everything
	assert.Len(t, FilterByYear(posts, 0), 2)
}

func TestYearsNewestFirst(t *testing.T) {
	posts := []BlogPost{
		post("a", day(2022, 5, 1), true),
		post("b", day(2024, 1, 1), true),
		post("c", day(2024, 6, 1), true),
		post("d", day(2023, 2, 1), true),
	}

	assert.Equal(t, []int{2024, 2023, 2022}, Years(posts))
}

func TestRelatedRanksBySharedTags(t *testing.T) {
	current := post("current", day(2024, 5, 1), true, "python", "packaging", "community")

	all := []BlogPost{
		current,
		post("two-tags", day(2023, 1, 1), true, "python", "packaging"),
		post("one-tag", day(2024, 4, 1), true, "python"),
		post("no-tags", day(2024, 6, 1), true, "events"),
		post("draft", day(2024, 6, 2), false, "python", "packaging", "community"),
	}

	related := Related(all, current, 3)

	assert.Len(t, related, 3)
	assert.Equal(t, "two-tags", related[0].Slug)
	assert.Equal(t, "one-tag", related[1].Slug)
	// no overlap left, most recent remaining post fills the quota
	assert.Equal(t, "no-tags", related[2].Slug)
}

func TestRelatedBreaksTiesByRecency(t *testing.T) {
	current := post("current", day(2024, 5, 1), true, "python")

	all := []BlogPost{
		current,
		post("older", day(2023, 1, 1), true, "python"),
		post("newer", day(2024, 3, 1), true, "python"),
	}

	related := Related(all, current, 2)

	assert.Equal(t, "newer", related[0].Slug)
	assert.Equal(t, "older", related[1].Slug)
}

func TestRelatedExcludesSelfAndDrafts(t *testing.T) {
	current := post("current", day(2024, 5, 1), true, "python")

	all := []BlogPost{
		current,
		post("draft", day(2024, 4, 1), false, "python"),
	}

	assert.Empty(t, Related(all, current, 3))
	assert.Nil(t, Related(all, current, 0))
}

func event(slug string, start, end time.Time) Event {
	return Event{ID: slug, Slug: slug, Title: slug, Live: true, StartDate: start, EndDate: end}
}

func TestSplitEvents(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	events := []Event{
		event("long-past", day(2024, 1, 10), time.Time{}),
		event("just-past", day(2024, 6, 14), time.Time{}),
		event("today", day(2024, 6, 15), time.Time{}),
		event("soon", day(2024, 6, 20), time.Time{}),
		event("later", day(2024, 8, 1), time.Time{}),
	}

	upcoming, past := SplitEvents(events, now)

	// an event on the current date still counts as upcoming
	assert.Equal(t, []string{"today", "soon", "later"}, eventSlugs(upcoming))
	assert.Equal(t, []string{"just-past", "long-past"}, eventSlugs(past))
}

func TestSplitEventsMultiDay(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	// started last week but runs through tomorrow
	running := event("running", day(2024, 6, 10), day(2024, 6, 16))

	upcoming, past := SplitEvents([]Event{running}, now)

	assert.Len(t, upcoming, 1)
	assert.Empty(t, past)
}

func eventSlugs(events []Event) []string {
	slugs := make([]string, 0, len(events))
	for _, e := range events {
		slugs = append(slugs, e.Slug)
	}
	return slugs
}
