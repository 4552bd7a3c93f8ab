package enum

// VoteDirection represents the direction of a vote cast on a question.
//
//go:generate go tool enumer -type=VoteDirection -trimprefix=VoteDirection
type VoteDirection int

const (
	VoteDirectionUp VoteDirection = iota
	VoteDirectionDown
)
