package thread

import (
	"slices"
	"testing"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

func TestInsert_PrependsUnderParent(t *testing.T) {
	f := Build(sampleThread())

	if !f.Insert(c(5, 2), false) {
		t.Fatalf("expected insert under loaded parent")
	}
	parent, _ := f.Search(2)
	kids := f.Children(parent)
	if len(kids) != 2 || kids[0].ID() != 5 || kids[1].ID() != 4 {
		t.Fatalf("new reply must come first: %v", childIDs(f, parent))
	}
	if kids[0].Depth != parent.Depth+1 || kids[0].Depth != 2 {
		t.Fatalf("unexpected depth for inserted reply: %d", kids[0].Depth)
	}
	checkDepths(t, f)
}

// Insert prepends while Build keeps server order; both are intended.
func TestInsert_OrderDiffersFromBuild(t *testing.T) {
	built := Build(append(sampleThread(), c(5, 1)))
	root, _ := built.Search(1)
	if got := childIDs(built, root); !slices.Equal(got, []int64{2, 3, 5}) {
		t.Fatalf("build keeps arrival order: %v", got)
	}

	live := Build(sampleThread())
	live.Insert(c(5, 1), false)
	root, _ = live.Search(1)
	if got := childIDs(live, root); !slices.Equal(got, []int64{5, 2, 3}) {
		t.Fatalf("insert puts the live reply first: %v", got)
	}
}

func TestInsert_TopLevel(t *testing.T) {
	f := Build(sampleThread())
	if !f.Insert(c(6, 0), false) {
		t.Fatalf("expected top-level insert in full mode")
	}
	roots := f.Roots()
	if roots[0].ID() != 6 || roots[0].Depth != 0 {
		t.Fatalf("top-level comment must be prepended at depth 0: %+v", roots[0])
	}

	ctx := BuildContext(sampleThread(), 2)
	if ctx.Insert(c(7, 0), true) {
		t.Fatalf("context mode must drop unrelated top-level comments")
	}
	if ctx.Len() != 2 {
		t.Fatalf("context forest must be unchanged, got %d nodes", ctx.Len())
	}
}

func TestInsert_ContextModeUnderRoot(t *testing.T) {
	f := BuildContext(sampleThread(), 2)
	if !f.Insert(c(8, 4), true) {
		t.Fatalf("reply inside the context subtree must be inserted")
	}
	n, _ := f.Search(8)
	if n.Depth != 2 {
		t.Fatalf("expected depth 2 below context root, got %d", n.Depth)
	}
	if f.Insert(c(9, 3), true) {
		t.Fatalf("reply to a comment outside the subtree must be dropped")
	}
}

func TestInsert_DropsUnloadedParentAndDuplicates(t *testing.T) {
	f := Build(sampleThread())
	if f.Insert(c(10, 99), false) {
		t.Fatalf("reply to unloaded parent must be dropped")
	}
	if f.Insert(c(3, 1), false) {
		t.Fatalf("existing id must not be inserted twice")
	}
	if f.Len() != 4 {
		t.Fatalf("forest must be unchanged, got %d nodes", f.Len())
	}
}

func TestInsert_ManyKeepsPointersConsistent(t *testing.T) {
	f := Build([]domain.Comment{c(1, 0)})
	for id := int64(2); id < 50; id++ {
		if !f.Insert(c(id, id-1), false) {
			t.Fatalf("insert %d failed", id)
		}
	}
	n, ok := f.Search(49)
	if !ok || n.Depth != 48 {
		t.Fatalf("unexpected deep insert result ok=%v", ok)
	}
	checkDepths(t, f)
}

func TestReplace_KeepsPositionAndChildren(t *testing.T) {
	f := Build(sampleThread())
	edited := domain.Comment{ID: 2, ParentID: 1, Content: "edited", Deleted: true}
	if !f.Replace(edited) {
		t.Fatalf("expected replace to find comment")
	}
	n, _ := f.Search(2)
	if n.Comment.Content != "edited" || !n.Comment.Deleted || n.NumChildren() != 1 || n.Depth != 1 {
		t.Fatalf("unexpected node after replace: %+v", n)
	}
	if f.Replace(domain.Comment{ID: 77}) {
		t.Fatalf("replace of unknown id must report false")
	}
}

func TestApplyVote_OptimisticThenServerWins(t *testing.T) {
	in := sampleThread()
	in[1].Vote = domain.VoteState{Score: 10, Upvotes: 10}
	f := Build(in)

	prev, ok := f.ApplyVote(2, domain.Upvote)
	if !ok || prev.Score != 10 {
		t.Fatalf("unexpected previous state: %+v ok=%v", prev, ok)
	}
	n, _ := f.Search(2)
	if n.Comment.Vote != (domain.VoteState{MyVote: 1, Score: 11, Upvotes: 11}) {
		t.Fatalf("unexpected optimistic state: %+v", n.Comment.Vote)
	}

	server := domain.VoteState{MyVote: 1, Score: 14, Upvotes: 15, Downvotes: 1}
	if !f.SetVote(2, server) {
		t.Fatalf("expected set vote to find comment")
	}
	n, _ = f.Search(2)
	if n.Comment.Vote != server {
		t.Fatalf("server state must replace local prediction: %+v", n.Comment.Vote)
	}

	if _, ok := f.ApplyVote(99, domain.Upvote); ok {
		t.Fatalf("vote on unknown comment must report false")
	}
}

func TestApply_RoutesByKind(t *testing.T) {
	f := Build(sampleThread())
	tests := []struct {
		name string
		u    domain.Update
		want bool
	}{
		{name: "new reply", u: domain.NewCommentUpdate(c(5, 3)), want: true},
		{name: "edit", u: domain.EditCommentUpdate(domain.Comment{ID: 4, Content: "x"}), want: true},
		{name: "vote", u: domain.VoteUpdate(1, domain.VoteState{Score: 3}), want: true},
		{name: "vote miss", u: domain.VoteUpdate(99, domain.VoteState{}), want: false},
		{name: "unknown kind", u: domain.Update{}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Apply(tc.u, false); got != tc.want {
				t.Fatalf("apply %s: got %v want %v", tc.u.Kind, got, tc.want)
			}
		})
	}
	n, _ := f.Search(3)
	if got := childIDs(f, n); !slices.Equal(got, []int64{5}) {
		t.Fatalf("expected inserted reply under 3: %v", got)
	}
}
