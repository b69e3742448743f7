package trivia

// Paginate returns the page-th window of items. Pages are 1-based; non-positive pages
// are treated as the first page. A page past the end yields an empty slice.
func Paginate(page int, items []Question) []Question {
	if page < 1 {
		page = 1
	}
	// Any page beyond this one starts past the end; checking first keeps the
	// multiplication below from overflowing on huge page numbers.
	if page > len(items)/QuestionsPerPage+1 {
		return []Question{}
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []Question{}
	}
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	out := make([]Question, end-start)
	copy(out, items[start:end])
	return out
}

// IndexCategories maps category ids to their labels.
func IndexCategories(categories []Category) map[int]string {
	index := make(map[int]string, len(categories))
	for _, c := range categories {
		index[c.ID] = c.Type
	}
	return index
}
