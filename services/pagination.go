package services

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages outside the range,
// including page numbers below 1, yield an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	// Compare page counts before multiplying so huge pages cannot overflow.
	if page < 1 || page-1 >= (len(items)+QuestionsPerPage-1)/QuestionsPerPage {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
