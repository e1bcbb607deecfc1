package blog

type Filter string

const (
	FilterPublished Filter = "published"
	FilterDrafts    Filter = "drafts"
	FilterTrash     Filter = "trash"
)

var emptyMessages = map[Filter]string{
	FilterPublished: "You have not published any blogs yet.",
	FilterDrafts:    "You have not created any drafts yet.",
	FilterTrash:     "Trash is empty.",
}

// ParseFilter maps the raw query value to a filter, defaulting to published.
func ParseFilter(s string) Filter {
	switch f := Filter(s); f {
	case FilterPublished, FilterDrafts, FilterTrash:
		return f
	default:
		return FilterPublished
	}
}

func (f Filter) EmptyMessage() string {
	return emptyMessages[ParseFilter(string(f))]
}

// Partition splits the posts by their published flag, keeping the source order.
func Partition(posts []Post) (published, drafts []Post) {
	published = []Post{}
	drafts = []Post{}
	for _, p := range posts {
		if p.IsPublished {
			published = append(published, p)
		} else {
			drafts = append(drafts, p)
		}
	}
	return published, drafts
}

// FilterPosts selects the published or draft posts. Trash is never served from the
// live list, so it yields no posts here.
func FilterPosts(posts []Post, f Filter) []Post {
	published, drafts := Partition(posts)
	switch f {
	case FilterPublished:
		return published
	case FilterDrafts:
		return drafts
	default:
		return []Post{}
	}
}
