package filter

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scooper/internal/domain"
)

// fakeApplier records every filter request
type fakeApplier struct {
	calls []domain.FilterQuery
}

func (f *fakeApplier) ApplyFilters(q domain.FilterQuery) {
	f.calls = append(f.calls, q)
}

func newControl(buckets ...string) (*Control, *fakeApplier) {
	a := &fakeApplier{}
	c := New(a)
	c.SetBuckets(buckets)
	return c, a
}

func typeText(c *Control, s string) {
	c.FocusQuery()
	for _, r := range s {
		c.UpdateQuery(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestInitialState(t *testing.T) {
	c, a := newControl()

	assert.Equal(t, DropdownState{Open: false, Selected: NoIndex, Hover: NoIndex}, c.Dropdown())
	assert.Equal(t, domain.AllBuckets, c.Bucket())
	assert.Equal(t, []string{""}, c.Options())
	assert.Equal(t, PlaceholderLabel, c.BucketLabel())
	assert.Empty(t, a.calls)
}

func TestOptionsPrependSentinel(t *testing.T) {
	c, _ := newControl("main", "extras")

	assert.Equal(t, []string{"", "main", "extras"}, c.Options())
	assert.Equal(t, AllLabel, c.OptionLabel(0))
	assert.Equal(t, "extras", c.OptionLabel(2))
	assert.Equal(t, "", c.OptionLabel(3))
}

func TestOpenAndDismiss(t *testing.T) {
	c, a := newControl("main")

	assert.False(t, c.Dismiss(), "dismiss while closed is a no-op")
	assert.True(t, c.Open())
	assert.True(t, c.IsOpen())
	assert.False(t, c.Open(), "open while open is a no-op")
	assert.True(t, c.Dismiss())
	assert.False(t, c.IsOpen())
	assert.Empty(t, a.calls, "open/dismiss never filter")
}

func TestChooseSetsBucketAndCloses(t *testing.T) {
	type tc struct {
		index      int
		wantBucket string
		wantLabel  string
	}

	tests := map[string]tc{
		"sentinel means all buckets": {index: 0, wantBucket: "", wantLabel: AllLabel},
		"first bucket":               {index: 1, wantBucket: "main", wantLabel: "main"},
		"last bucket":                {index: 3, wantBucket: "versions", wantLabel: "versions"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buckets := []string{"main", "extras", "versions"}
			c, a := newControl(buckets...)
			typeText(c, "git")

			require.True(t, c.Open())
			require.True(t, c.Choose(tt.index))

			if tt.index == 0 {
				assert.Equal(t, "", c.Bucket())
			} else {
				assert.Equal(t, buckets[tt.index-1], c.Bucket())
			}
			assert.Equal(t, tt.wantBucket, c.Bucket())
			assert.Equal(t, tt.wantLabel, c.BucketLabel())
			assert.False(t, c.IsOpen())
			assert.Equal(t, tt.index, c.Dropdown().Selected)
			assert.Equal(t, []domain.FilterQuery{{Text: "git", Bucket: tt.wantBucket}}, a.calls)
		})
	}
}

func TestChooseInvalidIsNoop(t *testing.T) {
	c, a := newControl("main")

	assert.False(t, c.Choose(1), "closed dropdown")

	c.Open()
	assert.False(t, c.Choose(-1))
	assert.False(t, c.Choose(2))
	assert.True(t, c.IsOpen(), "stale click leaves the dropdown as it was")
	assert.Equal(t, NoIndex, c.Dropdown().Selected)
	assert.Empty(t, a.calls)
}

func TestEnterAndButtonIssueSameRequest(t *testing.T) {
	c, a := newControl("main", "extras")
	typeText(c, "7zip")
	c.Open()
	c.Choose(1)
	a.calls = nil

	// Enter in the field, then the search button, with unchanged state
	c.Submit()
	c.Submit()

	want := domain.FilterQuery{Text: "7zip", Bucket: "main"}
	assert.Equal(t, []domain.FilterQuery{want, want}, a.calls, "identical commits are not deduplicated")
}

func TestSubmitWithoutBucketUsesSentinel(t *testing.T) {
	c, a := newControl("main")
	c.SetQueryText("firefox")

	q := c.Submit()

	assert.Equal(t, domain.FilterQuery{Text: "firefox"}, q)
	assert.True(t, q.IsAll())
	assert.Len(t, a.calls, 1)
}

func TestBucketUpdateWhileOpenKeepsState(t *testing.T) {
	c, a := newControl("main", "extras", "versions")
	c.Open()
	c.Choose(2)
	c.Open()
	c.MoveHover(1)
	typeText(c, "fire")

	c.SetBuckets([]string{"main", "extras", "versions", "nerd-fonts"})

	d := c.Dropdown()
	assert.True(t, d.Open)
	assert.Equal(t, 2, d.Selected)
	assert.Equal(t, 3, d.Hover)
	assert.Equal(t, "extras", c.Bucket())
	assert.Equal(t, "fire", c.Query().Text, "mid-edit text survives updates")
	assert.Len(t, a.calls, 1)
}

func TestVanishedBucketStaysSelected(t *testing.T) {
	c, a := newControl("main", "extras")
	c.Open()
	c.Choose(2)
	require.Equal(t, "extras", c.Bucket())
	require.False(t, c.SelectionStale())

	c.SetBuckets([]string{"main"})

	assert.Equal(t, 2, c.Dropdown().Selected)
	assert.Equal(t, "extras", c.Bucket())
	assert.True(t, c.SelectionStale())

	c.Submit()
	assert.Equal(t, domain.FilterQuery{Bucket: "extras"}, a.calls[len(a.calls)-1], "stale bucket is sent as is")
}

func TestShrinkingListClampsHover(t *testing.T) {
	c, _ := newControl("a", "b", "c")
	c.Open()
	c.SetHover(3)

	c.SetBuckets([]string{"a"})

	assert.Equal(t, 1, c.Dropdown().Hover)
	assert.True(t, c.ChooseHovered())
	assert.Equal(t, "a", c.Bucket())
}

func TestMoveHoverWraps(t *testing.T) {
	c, _ := newControl("main", "extras")

	c.MoveHover(1)
	assert.Equal(t, NoIndex, c.Dropdown().Hover, "closed dropdown ignores navigation")

	c.Open()
	assert.Equal(t, 0, c.Dropdown().Hover)
	c.MoveHover(-1)
	assert.Equal(t, 2, c.Dropdown().Hover)
	c.MoveHover(1)
	assert.Equal(t, 0, c.Dropdown().Hover)
	c.MoveHover(4)
	assert.Equal(t, 1, c.Dropdown().Hover)
}

func TestOpenHoversCurrentSelection(t *testing.T) {
	c, _ := newControl("main", "extras")
	c.Open()
	c.Choose(2)

	c.Open()
	assert.Equal(t, 2, c.Dropdown().Hover)
}

func TestReorderedBucketsFollowChosenName(t *testing.T) {
	c, a := newControl("main", "extras")
	c.Open()
	c.Choose(2)
	require.Equal(t, "extras", c.Bucket())

	c.SetBuckets([]string{"extras", "main"})

	assert.Equal(t, 2, c.Dropdown().Selected)
	assert.Equal(t, 1, c.SelectedOption())
	assert.False(t, c.SelectionStale())

	c.Open()
	assert.Equal(t, 1, c.Dropdown().Hover)

	// Enter on the reopened list keeps the same bucket
	c.ChooseHovered()
	assert.Equal(t, "extras", c.Bucket())
	assert.Equal(t, domain.FilterQuery{Bucket: "extras"}, a.calls[len(a.calls)-1])
}

func TestSelectedOption(t *testing.T) {
	c, _ := newControl("main", "extras")
	assert.Equal(t, NoIndex, c.SelectedOption(), "nothing chosen yet")

	c.Open()
	c.Choose(0)
	assert.Equal(t, 0, c.SelectedOption())

	c.Open()
	c.Choose(1)
	c.SetBuckets([]string{"extras"})
	assert.Equal(t, NoIndex, c.SelectedOption(), "stale bucket has no option")

	c.Open()
	assert.Equal(t, 0, c.Dropdown().Hover)
}

func TestQueryFocus(t *testing.T) {
	c, _ := newControl()

	assert.False(t, c.QueryFocused())
	c.FocusQuery()
	assert.True(t, c.QueryFocused())
	c.BlurQuery()
	assert.False(t, c.QueryFocused())
}
