package auditlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(action, entity, id string) Entry {
	return Entry{
		Timestamp: time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
		Action:    action,
		Entity:    entity,
		EntityID:  id,
	}
}

func TestAppendRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{entry("add", "transaction", "t1")}))
	require.NoError(t, Append(dir, []Entry{entry("remove", "goal", "g1")}))

	entries, err := Read(dir)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, "transaction", entries[0].Entity)
	assert.Equal(t, "t1", entries[0].EntityID)
	assert.Equal(t, "remove", entries[1].Action)
	assert.True(t, entries[0].Timestamp.Equal(time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)))
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	require.Error(t, err)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"yesterday", "add", "goal", "g1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}
