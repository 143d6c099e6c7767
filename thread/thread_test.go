package thread

import (
	"slices"
	"testing"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

func c(id, parent int64) domain.Comment {
	return domain.Comment{ID: id, ParentID: parent}
}

func sampleThread() []domain.Comment {
	return []domain.Comment{c(1, 0), c(2, 1), c(3, 1), c(4, 2)}
}

func checkDepths(t *testing.T, f *Forest) {
	t.Helper()
	for _, r := range f.Roots() {
		if r.Depth != 0 {
			t.Fatalf("root %d has depth %d", r.ID(), r.Depth)
		}
	}
	for n := range f.All() {
		for _, ch := range f.Children(n) {
			if ch.Depth != n.Depth+1 {
				t.Fatalf("child %d depth %d under parent %d depth %d", ch.ID(), ch.Depth, n.ID(), n.Depth)
			}
		}
	}
}

func childIDs(f *Forest, n *Node) []int64 {
	var ids []int64
	for _, ch := range f.Children(n) {
		ids = append(ids, ch.ID())
	}
	return ids
}

func TestBuild_NestsRepliesInInputOrder(t *testing.T) {
	f := Build(sampleThread())

	roots := f.Roots()
	if len(roots) != 1 || roots[0].ID() != 1 || roots[0].Depth != 0 {
		t.Fatalf("unexpected roots: %+v", roots)
	}
	if got := childIDs(f, roots[0]); !slices.Equal(got, []int64{2, 3}) {
		t.Fatalf("unexpected children of 1: %v", got)
	}
	n2, _ := f.Search(2)
	if got := childIDs(f, n2); !slices.Equal(got, []int64{4}) {
		t.Fatalf("unexpected children of 2: %v", got)
	}
	n4, _ := f.Search(4)
	if n4.Depth != 2 || n4.NumChildren() != 0 {
		t.Fatalf("unexpected node 4: depth=%d children=%d", n4.Depth, n4.NumChildren())
	}
	n3, _ := f.Search(3)
	if n3.Depth != 1 || n3.NumChildren() != 0 {
		t.Fatalf("unexpected node 3: depth=%d children=%d", n3.Depth, n3.NumChildren())
	}
	if got := f.IDs(); !slices.Equal(got, []int64{1, 2, 4, 3}) {
		t.Fatalf("unexpected display order: %v", got)
	}
	checkDepths(t, f)
}

func TestBuild_CountMatchesInputWhenParentsResolve(t *testing.T) {
	in := []domain.Comment{c(10, 0), c(11, 10), c(12, 0), c(13, 11), c(14, 13), c(15, 12)}
	f := Build(in)
	if f.Len() != len(in) {
		t.Fatalf("expected %d nodes, got %d", len(in), f.Len())
	}
	checkDepths(t, f)
}

func TestBuild_KeepsServerOrderWithoutSorting(t *testing.T) {
	in := []domain.Comment{c(9, 0), c(3, 0), c(7, 9), c(5, 9), c(6, 9)}
	f := Build(in)
	if got := f.IDs(); !slices.Equal(got, []int64{9, 7, 5, 6, 3}) {
		t.Fatalf("order changed: %v", got)
	}
}

func TestBuild_DropsOrphansAndTheirReplies(t *testing.T) {
	in := []domain.Comment{c(1, 0), c(2, 99), c(3, 2), c(4, 1)}
	f := Build(in)
	if got := f.IDs(); !slices.Equal(got, []int64{1, 4}) {
		t.Fatalf("orphans must be excluded: %v", got)
	}
	if _, ok := f.Search(2); ok {
		t.Fatalf("orphan must not be searchable")
	}
}

func TestBuild_DuplicateIDFirstWins(t *testing.T) {
	first := domain.Comment{ID: 1, Content: "first"}
	second := domain.Comment{ID: 1, Content: "second"}
	f := Build([]domain.Comment{first, second, c(2, 1)})
	if f.Len() != 2 {
		t.Fatalf("duplicate ids must not produce extra nodes, got %d", f.Len())
	}
	n, _ := f.Search(1)
	if n.Comment.Content != "first" {
		t.Fatalf("expected first occurrence kept, got %q", n.Comment.Content)
	}
}

func TestBuild_SurvivesParentCycle(t *testing.T) {
	f := Build([]domain.Comment{c(1, 0), c(2, 3), c(3, 2), c(4, 4)})
	if got := f.IDs(); !slices.Equal(got, []int64{1}) {
		t.Fatalf("cyclic records must be excluded: %v", got)
	}
}

func TestBuildContext_RootAtDepthZero(t *testing.T) {
	in := []domain.Comment{c(1, 0), c(2, 1), c(3, 1), c(4, 2), c(5, 4)}
	f := BuildContext(in, 2)

	roots := f.Roots()
	if len(roots) != 1 || roots[0].ID() != 2 || roots[0].Depth != 0 {
		t.Fatalf("context root must be the only root at depth 0: %+v", roots)
	}
	if got := f.IDs(); !slices.Equal(got, []int64{2, 4, 5}) {
		t.Fatalf("only the root subtree must be kept: %v", got)
	}
	n5, _ := f.Search(5)
	if n5.Depth != 2 {
		t.Fatalf("depth must be shifted by the root's depth, got %d", n5.Depth)
	}
	if f.ContextOffset() != 1 {
		t.Fatalf("expected context offset 1, got %d", f.ContextOffset())
	}
	checkDepths(t, f)
}

func TestBuildContext_UsesServerPathForOffset(t *testing.T) {
	// Ancestors were not requested; the server path still carries the depth.
	in := []domain.Comment{
		{ID: 40, ParentID: 30, Path: "0.10.30.40"},
		{ID: 41, ParentID: 40, Path: "0.10.30.40.41"},
	}
	f := BuildContext(in, 40)
	if f.ContextOffset() != 2 {
		t.Fatalf("expected offset from path, got %d", f.ContextOffset())
	}
	if got := f.IDs(); !slices.Equal(got, []int64{40, 41}) {
		t.Fatalf("unexpected context forest: %v", got)
	}
	n, _ := f.Search(41)
	if n.Depth != 1 {
		t.Fatalf("expected depth 1 below context root, got %d", n.Depth)
	}
}

func TestBuildContext_MissingRootIsEmpty(t *testing.T) {
	f := BuildContext(sampleThread(), 77)
	if f.Len() != 0 || len(f.Roots()) != 0 {
		t.Fatalf("expected empty forest, got %d nodes", f.Len())
	}
}

func TestSearch_MissReturnsFalse(t *testing.T) {
	f := Build(sampleThread())
	if n, ok := f.Search(42); ok || n != nil {
		t.Fatalf("expected not found, got %+v", n)
	}
	if n, ok := (&Forest{}).Search(1); ok || n != nil {
		t.Fatalf("empty forest must not match")
	}
}

func TestSearch_FindsDeepNode(t *testing.T) {
	in := []domain.Comment{c(1, 0)}
	for id := int64(2); id <= 200; id++ {
		in = append(in, c(id, id-1))
	}
	f := Build(in)
	n, ok := f.Search(200)
	if !ok || n.Depth != 199 {
		t.Fatalf("expected deep node at depth 199, got ok=%v", ok)
	}
}

func TestFlatten_KeepsOrderAtDepthZero(t *testing.T) {
	in := []domain.Comment{c(4, 2), c(1, 0), c(3, 1), c(2, 1)}
	f := Flatten(in)
	if got := f.IDs(); !slices.Equal(got, []int64{4, 1, 3, 2}) {
		t.Fatalf("flatten must keep input order: %v", got)
	}
	for n := range f.All() {
		if n.Depth != 0 || n.NumChildren() != 0 {
			t.Fatalf("flat node %d has depth %d children %d", n.ID(), n.Depth, n.NumChildren())
		}
	}
}
