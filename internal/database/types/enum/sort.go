package enum

// QuestionSortBy represents the available orderings for question listings.
//
//go:generate go tool enumer -type=QuestionSortBy -trimprefix=QuestionSortBy
type QuestionSortBy int

const (
	// QuestionSortByRankScore orders questions by derived rank score descending.
	QuestionSortByRankScore QuestionSortBy = iota
	// QuestionSortByNewest orders questions by creation time descending.
	QuestionSortByNewest
)
