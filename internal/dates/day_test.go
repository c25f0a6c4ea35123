package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	d, err := Parse("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", d.String())
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 5, d.DayOfMonth())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("05/01/2024")
	require.Error(t, err)

	_, err = Parse("")
	require.Error(t, err)
}

func TestDay_Ordering(t *testing.T) {
	a := MustParse("2024-01-05")
	b := MustParse("2024-01-06")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestAddDays_Normalizes(t *testing.T) {
	d := MustParse("2024-01-31")
	assert.Equal(t, "2024-02-01", d.AddDays(1).String())
	assert.Equal(t, "2023-12-31", MustParse("2024-01-01").AddDays(-1).String())
}

func TestDay_JSON(t *testing.T) {
	d := MustParse("2024-02-29")

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(b))

	var back Day
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)
}
