package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initWallet(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runDompet(t, "init", dir, "--name", "Budi")
	require.NoError(t, err, out)
	return dir
}

func TestTx_AddAndList(t *testing.T) {
	dir := initWallet(t)

	out, err := runDompet(t, "tx", "add", "--data", dir,
		"--date", "2024-01-05", "--desc", "Gaji Januari", "--amount", "5000000",
		"--type", "income", "--category", "Gaji")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Pemasukan")
	assert.Contains(t, out, "Rp5.000.000")

	out, err = runDompet(t, "tx", "add", "--data", dir,
		"--date", "2024-01-10", "--desc", "Makan siang", "--amount", "50000",
		"--type", "expense", "--category", "Makan")
	require.NoError(t, err, out)

	out, err = runDompet(t, "tx", "list", "--data", dir)
	require.NoError(t, err, out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header plus two rows")
	// Newest first.
	assert.Contains(t, lines[1], "Makan siang")
	assert.Contains(t, lines[2], "Gaji Januari")
}

func TestTx_ListRange(t *testing.T) {
	dir := initWallet(t)

	for _, args := range [][]string{
		{"--date", "2024-01-05", "--desc", "Dalam", "--amount", "100", "--type", "expense"},
		{"--date", "2024-02-05", "--desc", "Luar", "--amount", "100", "--type", "expense"},
	} {
		out, err := runDompet(t, append([]string{"tx", "add", "--data", dir}, args...)...)
		require.NoError(t, err, out)
	}

	out, err := runDompet(t, "tx", "list", "--data", dir,
		"--from", "2024-01-01", "--to", "2024-01-31")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Dalam")
	assert.NotContains(t, out, "Luar")
}

func TestTx_Export(t *testing.T) {
	dir := initWallet(t)

	out, err := runDompet(t, "tx", "add", "--data", dir,
		"--date", "2024-01-05", "--desc", "Gaji", "--amount", "1000",
		"--type", "income", "--category", "Gaji")
	require.NoError(t, err, out)

	exportPath := filepath.Join(t.TempDir(), "out.csv")
	out, err = runDompet(t, "tx", "export", "--data", dir, "--out", exportPath)
	require.NoError(t, err, out)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	contents := string(data)
	assert.Contains(t, contents, "Tanggal,Deskripsi,Tipe,Kategori,Jumlah")
	assert.Contains(t, contents, `2024-01-05,"Gaji",INCOME,Gaji,1000`)
}

func TestTx_ExportImportRoundTrip(t *testing.T) {
	dir := initWallet(t)

	out, err := runDompet(t, "tx", "add", "--data", dir,
		"--date", "2024-01-05", "--desc", "Gaji", "--amount", "1000",
		"--type", "income", "--category", "Gaji")
	require.NoError(t, err, out)

	exportPath := filepath.Join(t.TempDir(), "out.csv")
	out, err = runDompet(t, "tx", "export", "--data", dir, "--out", exportPath)
	require.NoError(t, err, out)

	other := initWallet(t)
	out, err = runDompet(t, "tx", "import", exportPath, "--data", other)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Imported 1 transactions")

	out, err = runDompet(t, "tx", "list", "--data", other)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Gaji")
}

func TestGoal_DepositWithdraw(t *testing.T) {
	dir := initWallet(t)

	out, err := runDompet(t, "goal", "add", "--data", dir,
		"--name", "Dana darurat", "--type", "emergency", "--target", "1000")
	require.NoError(t, err, out)

	out, err = runDompet(t, "goal", "list", "--data", dir)
	require.NoError(t, err, out)
	id := strings.Fields(strings.Split(strings.TrimSpace(out), "\n")[1])[0]

	out, err = runDompet(t, "goal", "deposit", id, "300", "--data", dir)
	require.NoError(t, err, out)
	out, err = runDompet(t, "goal", "withdraw", id, "100", "--data", dir)
	require.NoError(t, err, out)

	out, err = runDompet(t, "goal", "list", "--data", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Rp200")
	assert.Contains(t, out, "20.00%")
}

func TestReport_Summary(t *testing.T) {
	dir := initWallet(t)

	for _, args := range [][]string{
		{"--date", "2024-01-05", "--desc", "Gaji", "--amount", "1000", "--type", "income", "--category", "Gaji"},
		{"--date", "2024-01-10", "--desc", "Makan", "--amount", "400", "--type", "expense", "--category", "Makan"},
	} {
		out, err := runDompet(t, append([]string{"tx", "add", "--data", dir}, args...)...)
		require.NoError(t, err, out)
	}

	out, err := runDompet(t, "report", "--data", dir,
		"--from", "2024-01-01", "--to", "2024-01-31")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Pemasukan:   Rp1.000")
	assert.Contains(t, out, "Pengeluaran: Rp400")
	assert.Contains(t, out, "Arus Kas:    +Rp600")
	assert.Contains(t, out, "Kekayaan Bersih: Rp600")
	assert.Contains(t, out, "Makan")
}

func TestInvest_AddAndList(t *testing.T) {
	dir := initWallet(t)

	out, err := runDompet(t, "invest", "add", "--data", dir,
		"--symbol", "BBCA", "--name", "Bank Central Asia", "--type", "stock",
		"--qty", "100", "--buy-price", "9500")
	require.NoError(t, err, out)

	out, err = runDompet(t, "invest", "list", "--data", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "BBCA")
	assert.Contains(t, out, "Saham")
	// Current price starts at the buy price, so P/L opens flat.
	assert.Contains(t, out, "Rp9.500")
	assert.Contains(t, out, "0.00%")
}

func TestCategory_AddListRemove(t *testing.T) {
	dir := initWallet(t)

	out, err := runDompet(t, "category", "add", "--data", dir,
		"--name", "Kopi", "--type", "expense", "--color", "#123456")
	require.NoError(t, err, out)

	out, err = runDompet(t, "category", "list", "--data", dir)
	require.NoError(t, err, out)
	require.Contains(t, out, "Kopi")

	var id string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.Contains(line, "Kopi") {
			id = strings.Fields(line)[0]
		}
	}
	require.NotEmpty(t, id)

	out, err = runDompet(t, "category", "rm", id, "--data", dir)
	require.NoError(t, err, out)

	out, err = runDompet(t, "category", "list", "--data", dir)
	require.NoError(t, err, out)
	assert.NotContains(t, out, "Kopi")
}

func TestAuditLog_RecordsMutations(t *testing.T) {
	dir := initWallet(t)

	out, err := runDompet(t, "tx", "add", "--data", dir,
		"--date", "2024-01-05", "--desc", "Gaji", "--amount", "1000",
		"--type", "income", "--category", "Gaji")
	require.NoError(t, err, out)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
	contents := string(data)
	assert.Contains(t, contents, "timestamp,action,entity,entity_id")
	assert.Contains(t, contents, "add,transaction")
}
