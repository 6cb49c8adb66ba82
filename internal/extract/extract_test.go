package extract

import (
	"testing"

	"group-wager-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var src = domain.SourceRef{ChatID: -100200300, MessageID: 77}

func newTestExtractor() *Extractor {
	return New("full", "✅")
}

func TestAnnouncement_MentionStyle(t *testing.T) {
	e := newTestExtractor()

	ann, ok := e.Announcement("@p1\n@p2\n300 full", src)
	require.True(t, ok)
	assert.Equal(t, []string{"p1", "p2"}, ann.Participants)
	assert.Equal(t, int64(300), ann.Stake)
	assert.Equal(t, src, ann.Source)
}

func TestAnnouncement_BareNames(t *testing.T) {
	e := newTestExtractor()

	ann, ok := e.Announcement("alice\nbob\n400 Full", src)
	require.True(t, ok)
	assert.Equal(t, []string{"alice", "bob"}, ann.Participants)
	assert.Equal(t, int64(400), ann.Stake)
}

func TestAnnouncement_MixedFormats(t *testing.T) {
	e := newTestExtractor()

	// Mentions and bare names in the same table, order of first appearance.
	ann, ok := e.Announcement("@alice\nbobby\n@carol\n500 FULL", src)
	require.True(t, ok)
	assert.Equal(t, []string{"alice", "bobby", "carol"}, ann.Participants)
	assert.Equal(t, int64(500), ann.Stake)
}

func TestAnnouncement_DuplicateHandlesCollapse(t *testing.T) {
	e := newTestExtractor()

	ann, ok := e.Announcement("@alice\n@Alice\n@bob\n250 full", src)
	require.True(t, ok)
	assert.Equal(t, []string{"alice", "bob"}, ann.Participants)
}

func TestAnnouncement_NoKeyword(t *testing.T) {
	e := newTestExtractor()

	_, ok := e.Announcement("@p1\n@p2\n300", src)
	assert.False(t, ok)
}

func TestAnnouncement_TooFewParticipants(t *testing.T) {
	e := newTestExtractor()

	_, ok := e.Announcement("@p1\n300 full", src)
	assert.False(t, ok)
}

func TestAnnouncement_MissingStake(t *testing.T) {
	e := newTestExtractor()

	_, ok := e.Announcement("@p1\n@p2\nfull", src)
	assert.False(t, ok)
}

func TestAnnouncement_ZeroStakeIsNoMatch(t *testing.T) {
	e := newTestExtractor()

	// The first standalone integer is the stake; zero is invalid even if
	// a later positive number appears.
	_, ok := e.Announcement("@p1\n@p2\n0 full 300", src)
	assert.False(t, ok)
}

func TestAnnouncement_DigitsInHandleAreNotStake(t *testing.T) {
	e := newTestExtractor()

	ann, ok := e.Announcement("@player1\n@player2\n150 full", src)
	require.True(t, ok)
	assert.Equal(t, []string{"player1", "player2"}, ann.Participants)
	assert.Equal(t, int64(150), ann.Stake)
}

func TestAnnouncement_CustomKeyword(t *testing.T) {
	e := New("done", "✅")

	_, ok := e.Announcement("@p1\n@p2\n300 full", src)
	assert.False(t, ok)

	ann, ok := e.Announcement("@p1\n@p2\n300 done", src)
	require.True(t, ok)
	assert.Equal(t, int64(300), ann.Stake)
}

func TestAnnouncement_Deterministic(t *testing.T) {
	e := newTestExtractor()
	text := "@alice\nbobby\n600 full"

	first, ok1 := e.Announcement(text, src)
	second, ok2 := e.Announcement(text, src)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestWinnerMarks_MentionThenMark(t *testing.T) {
	e := newTestExtractor()

	marks, ok := e.WinnerMarks("@p1 ✅\n@p2\n300 full", src)
	require.True(t, ok)
	require.Len(t, marks.Marks, 1)
	assert.Equal(t, "p1", marks.Marks[0].Handle)
	assert.Equal(t, 1, marks.Marks[0].Count)
}

func TestWinnerMarks_NoSpace(t *testing.T) {
	e := newTestExtractor()

	marks, ok := e.WinnerMarks("@winner✅", src)
	require.True(t, ok)
	assert.Equal(t, "winner", marks.Marks[0].Handle)
}

func TestWinnerMarks_MarkThenMention(t *testing.T) {
	e := newTestExtractor()

	marks, ok := e.WinnerMarks("✅ @p2", src)
	require.True(t, ok)
	assert.Equal(t, "p2", marks.Marks[0].Handle)
}

func TestWinnerMarks_BareName(t *testing.T) {
	e := newTestExtractor()

	marks, ok := e.WinnerMarks("alice ✅", src)
	require.True(t, ok)
	assert.Equal(t, "alice", marks.Marks[0].Handle)
}

func TestWinnerMarks_RepeatedMarksAccumulate(t *testing.T) {
	e := newTestExtractor()

	marks, ok := e.WinnerMarks("@p1 ✅✅", src)
	require.True(t, ok)
	require.Len(t, marks.Marks, 1)
	assert.Equal(t, 2, marks.Marks[0].Count)
}

func TestWinnerMarks_MultipleWinners(t *testing.T) {
	e := newTestExtractor()

	marks, ok := e.WinnerMarks("@p1 ✅\n@p2 ✅\n@p3\n300 full", src)
	require.True(t, ok)
	require.Len(t, marks.Marks, 2)
	assert.Equal(t, "p1", marks.Marks[0].Handle)
	assert.Equal(t, "p2", marks.Marks[1].Handle)
}

func TestWinnerMarks_NoMarker(t *testing.T) {
	e := newTestExtractor()

	_, ok := e.WinnerMarks("@p1\n@p2\n300 full", src)
	assert.False(t, ok)
}

func TestWinnerMarks_LoneMarkerIgnored(t *testing.T) {
	e := newTestExtractor()

	_, ok := e.WinnerMarks("✅", src)
	assert.False(t, ok)
}

func TestWinnerMarks_MarkerFarFromHandleIgnored(t *testing.T) {
	e := newTestExtractor()

	// Glyph on its own line is decorative, not a mark.
	_, ok := e.WinnerMarks("@p1\n✅\n", src)
	assert.False(t, ok)
}

func TestWinnerMarks_Deterministic(t *testing.T) {
	e := newTestExtractor()
	text := "@p1 ✅✅\n@p2 ✅"

	first, ok1 := e.WinnerMarks(text, src)
	second, ok2 := e.WinnerMarks(text, src)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestHandles_AllVisibleHandles(t *testing.T) {
	e := newTestExtractor()

	// Mentions and bare-name lines both count; marked or not is irrelevant.
	handles := e.Handles("prediction table full\n@alice ✅ vs @bob\ncharlie")
	assert.Equal(t, []string{"alice", "bob", "charlie"}, handles)
}

func TestHandles_Deduplicated(t *testing.T) {
	e := newTestExtractor()

	handles := e.Handles("@alice vs @Alice\n@bob")
	assert.Equal(t, []string{"alice", "bob"}, handles)
}

func TestHandles_NoneVisible(t *testing.T) {
	e := newTestExtractor()

	assert.Empty(t, e.Handles("300 full\n✅"))
}
