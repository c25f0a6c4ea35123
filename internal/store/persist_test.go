package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
)

func TestLoad_MissingFile_SeedsDefaults(t *testing.T) {
	dir := t.TempDir()

	st, err := Load(dir)
	require.NoError(t, err)

	assert.Empty(t, st.Transactions)
	assert.Empty(t, st.Investments)
	assert.Empty(t, st.Goals)
	assert.Equal(t, model.DefaultCategories(), st.Categories)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := New(nil)
	s.AddCategory("Gaji", model.TypeIncome, "#22c55e")
	s.AddTransaction(dates.MustParse("2024-01-05"), "Gaji bulanan", dec("1000"), model.TypeIncome, "Gaji")
	s.AddInvestment("BBCA", "Bank Central Asia", model.InvestmentStock, dec("100"), dec("9500"))
	deadline := dates.MustParse("2026-12-31")
	s.AddGoal("Menikah", model.GoalWedding, dec("50000000"), &deadline)

	require.NoError(t, Save(dir, s.State()))

	back, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, back.Transactions, 1)
	assert.Equal(t, "Gaji bulanan", back.Transactions[0].Description)
	assert.True(t, back.Transactions[0].Amount.Equal(dec("1000")))
	assert.Equal(t, "2024-01-05", back.Transactions[0].Date.String())

	require.Len(t, back.Investments, 1)
	assert.True(t, back.Investments[0].CurrentPrice.Equal(dec("9500")))

	require.Len(t, back.Goals, 1)
	require.NotNil(t, back.Goals[0].Deadline)
	assert.Equal(t, "2026-12-31", back.Goals[0].Deadline.String())
}

func TestSave_WritesPlainNumbers(t *testing.T) {
	dir := t.TempDir()

	s := New(nil)
	s.AddTransaction(dates.MustParse("2024-01-05"), "Gaji", dec("1000"), model.TypeIncome, "Gaji")
	require.NoError(t, Save(dir, s.State()))

	data, err := os.ReadFile(filepath.Join(dir, StateFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount": 1000`, "amounts persist as JSON numbers")
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, &model.AppState{}))

	_, err := os.Stat(filepath.Join(dir, StateFile+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_MigratesMissingCollections(t *testing.T) {
	dir := t.TempDir()
	// Snapshot from before the category system: only transactions present.
	raw := `{"transactions":[{"id":"1","date":"2024-01-05","description":"Gaji","amount":1000,"type":"INCOME","category":"Gaji"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFile), []byte(raw), 0o644))

	st, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, st.Transactions, 1)
	assert.NotNil(t, st.Investments)
	assert.NotNil(t, st.Goals)
	assert.Equal(t, model.DefaultCategories(), st.Categories, "empty categories are seeded once")
}

func TestLoad_KeepsExistingCategories(t *testing.T) {
	dir := t.TempDir()
	raw := `{"categories":[{"id":"x","name":"Kos","type":"EXPENSE","color":"#000000"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFile), []byte(raw), 0o644))

	st, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, st.Categories, 1)
	assert.Equal(t, "Kos", st.Categories[0].Name)
}

func TestLoad_MalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFile), []byte("{not json"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing snapshot")
}
