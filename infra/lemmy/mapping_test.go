package lemmy

import (
	"strings"
	"testing"
	"time"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

func TestStripHTML_DecodesEntitiesAndStripsTags(t *testing.T) {
	in := `<p>Hello &lt;world&gt; &amp; crew</p><script>x</script><br/>line2`
	got := stripHTML(in)
	if strings.Contains(got, "<p>") || strings.Contains(got, "<script>") {
		t.Fatalf("expected HTML tags stripped: %q", got)
	}
	if !strings.Contains(got, "<world>") || !strings.Contains(got, "&") {
		t.Fatalf("expected html entities decoded: %q", got)
	}
	if !strings.Contains(got, "\nline2") {
		t.Fatalf("expected line break retained: %q", got)
	}
}

func TestSanitizeForTerminal_RemovesEscapesAndControls(t *testing.T) {
	in := "ok\x1b[31mred\x1b[0m\x01\x02 tab\tand\nline"
	got := sanitizeForTerminal(in)
	if strings.Contains(got, "\x1b") {
		t.Fatalf("expected ansi removed: %q", got)
	}
	if strings.ContainsRune(got, '\x01') || strings.ContainsRune(got, '\x02') {
		t.Fatalf("expected controls removed: %q", got)
	}
	if got != "okred tab\tand\nline" {
		t.Fatalf("unexpected sanitized content: %q", got)
	}
}

func TestParentFromPath(t *testing.T) {
	tests := []struct {
		path string
		want int64
	}{
		{path: "0.34", want: 0},
		{path: "0.12.34", want: 12},
		{path: "0.1.12.34", want: 12},
		{path: "", want: 0},
		{path: "0.x.34", want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if got := parentFromPath(tc.path); got != tc.want {
				t.Fatalf("parentFromPath(%q) got %d want %d", tc.path, got, tc.want)
			}
		})
	}
}

func TestParseTime_AcceptsZonedAndNaive(t *testing.T) {
	want := time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)
	if got := parseTime("2024-03-01T10:20:30Z"); !got.Equal(want) {
		t.Fatalf("zoned: got %v", got)
	}
	if got := parseTime("2024-03-01T10:20:30.000000"); !got.Equal(want) {
		t.Fatalf("naive: got %v", got)
	}
	if got := parseTime("nope"); !got.IsZero() {
		t.Fatalf("invalid input must give zero time, got %v", got)
	}
}

func TestMapComment_MapsFields(t *testing.T) {
	up := 1
	cv := lemmyCommentView{
		Comment: lemmyComment{
			ID: 34, PostID: 7, Content: "<b>hi</b> &amp; bye", Path: "0.12.34",
			Published: "2024-03-01T10:20:30Z", Deleted: true,
		},
		Creator: lemmyPerson{Name: "alice"},
		Counts:  lemmyCommentCounts{Score: 5, Upvotes: 6, Downvotes: 1, ChildCount: 2},
		MyVote:  &up,
		Read:    true,
	}
	got := mapComment(cv)
	want := domain.VoteState{MyVote: domain.Upvote, Score: 5, Upvotes: 6, Downvotes: 1}
	if got.ID != 34 || got.ParentID != 12 || got.PostID != 7 || got.Author != "alice" {
		t.Fatalf("unexpected identity mapping: %+v", got)
	}
	if got.Content != "hi & bye" || got.Vote != want || !got.Deleted || !got.Read || got.ChildCount != 2 {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if d, ok := got.PathDepth(); !ok || d != 1 {
		t.Fatalf("expected path depth 1, got %d ok=%v", d, ok)
	}
}

func TestMapPost_DisplayNameAndCommunityFlags(t *testing.T) {
	down := -1
	pv := lemmyPostView{
		Post:      lemmyPost{ID: 3, Name: "Title", URL: " https://x.example/a ", Published: "2024-03-01T10:20:30Z"},
		Creator:   lemmyPerson{Name: "bob", DisplayName: "Bob\x1b[31m"},
		Community: lemmyCommunity{ID: 9, Name: "golang", Removed: true},
		Counts:    lemmyPostCounts{Score: -1, Downvotes: 1, Comments: 4},
		MyVote:    &down,
	}
	got := mapPost(pv)
	if got.Author != "Bob" || got.URL != "https://x.example/a" || got.Community.Name != "golang" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got.Visible() || got.Vote.MyVote != domain.Downvote || got.Comments != 4 {
		t.Fatalf("unexpected flags: %+v", got)
	}
}
