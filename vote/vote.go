// Package vote predicts vote and score changes locally before the server
// confirms them.
package vote

import "github.com/CrestNiraj12/lemmyrant/domain"

type delta struct {
	score, up, down int
}

// transitions is keyed by [current+1][target+1].
var transitions = [3][3]delta{
	// from -1; a switch to +1 does not touch Upvotes
	{{0, 0, 0}, {+1, 0, -1}, {+2, 0, -1}},
	// from 0
	{{-1, 0, +1}, {0, 0, 0}, {+1, +1, 0}},
	// from +1
	{{-2, -1, +1}, {-1, -1, 0}, {0, 0, 0}},
}

// Target normalizes a button press into the vote that should be sent:
// pressing the active direction again retracts to NoVote.
func Target(current, requested domain.Vote) domain.Vote {
	if requested != domain.NoVote && requested == current {
		return domain.NoVote
	}
	return requested
}

// Apply returns the state after the viewer presses requested. It is a
// prediction only; the server's response replaces it wholesale.
// Invalid votes leave the state unchanged.
func Apply(state domain.VoteState, requested domain.Vote) domain.VoteState {
	if !state.MyVote.Valid() || !requested.Valid() {
		return state
	}
	target := Target(state.MyVote, requested)
	d := transitions[state.MyVote+1][target+1]
	return domain.VoteState{
		MyVote:    target,
		Score:     state.Score + d.score,
		Upvotes:   state.Upvotes + d.up,
		Downvotes: state.Downvotes + d.down,
	}
}
