package journal

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/AlienHub/file-organizer/internal/organizer"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	j := New("", db)
	assert.NoError(t, j.Init())
	return j
}

func result(rule string, kind organizer.Kind, source string, succeeded bool, errMsg string, at time.Time) organizer.Result {
	return organizer.Result{
		Operation: &organizer.Operation{
			RuleName:  rule,
			Kind:      kind,
			Source:    source,
			Move:      &organizer.MoveDetails{Destination: "/dst"},
			Executed:  true,
			Succeeded: succeeded,
			Err:       errMsg,
		},
		Timestamp: at,
	}
}

func TestJournal_RecordAndRecent(t *testing.T) {
	j := newTestJournal(t)
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, j.Record(result("r1", organizer.KindMove, "/a.txt", true, "", base)))
	assert.NoError(t, j.Record(result("r2", organizer.KindMove, "/b.txt", false, "disk full", base.Add(time.Minute))))

	entries, err := j.Recent(10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "r2", entries[0].RuleName)
	assert.False(t, entries[0].Succeeded)
	assert.Equal(t, "disk full", entries[0].Error)

	assert.Equal(t, "r1", entries[1].RuleName)
	assert.Equal(t, "move", entries[1].Kind)
	assert.Equal(t, "/a.txt", entries[1].Source)
	assert.Equal(t, "a.txt -> /dst", entries[1].Detail)
	assert.True(t, entries[1].Succeeded)
}

func TestJournal_RecentHonorsLimit(t *testing.T) {
	j := newTestJournal(t)
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		assert.NoError(t, j.Record(result("r", organizer.KindMove, "/f.txt", true, "", base.Add(time.Duration(i)*time.Second))))
	}

	entries, err := j.Recent(3)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestJournal_RecentOnEmptyJournal(t *testing.T) {
	j := newTestJournal(t)

	entries, err := j.Recent(20)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournal_InitIsIdempotent(t *testing.T) {
	j := newTestJournal(t)

	assert.NoError(t, j.Init())
}
