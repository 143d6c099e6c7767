package domain

// Vote is the viewer's vote on a record.
type Vote int

const (
	Downvote Vote = -1
	NoVote   Vote = 0
	Upvote   Vote = 1
)

// Valid reports whether v is one of the three vote values.
func (v Vote) Valid() bool {
	return v >= Downvote && v <= Upvote
}

// VoteState is the per-record vote and score state shown next to a record.
type VoteState struct {
	MyVote    Vote
	Score     int
	Upvotes   int
	Downvotes int
}
