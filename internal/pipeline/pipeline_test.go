package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardtags/internal/ednout"
	"github.com/arcanaland/cardtags/internal/rows"
	"github.com/arcanaland/cardtags/internal/tagtable"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cardtags.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_LegacyWithOverrides(t *testing.T) {
	in := writeCSV(t, "Sure Gamble,,Economy\n,x,y\nDiesel,note,Draw,\n")
	out := filepath.Join(t.TempDir(), "cardtags.edn")

	res, err := Run(Options{
		Input:     in,
		Output:    out,
		Layout:    tagtable.LayoutLegacy,
		Overrides: tagtable.DefaultOverrides,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 2, res.Cards)
	assert.Equal(t, 1, res.Overridden)

	got, err := ednout.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"Sure Gamble": {"Economy", "Gamble"},
		"Diesel":      {"Draw"},
	}, got)
}

func TestRun_EmptyInput(t *testing.T) {
	in := writeCSV(t, "")
	out := filepath.Join(t.TempDir(), "cardtags.edn")

	res, err := Run(Options{Input: in, Output: out, Layout: tagtable.LayoutUpdated})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cards)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestRun_MissingOverrideCard(t *testing.T) {
	in := writeCSV(t, "Sure Gamble,Economy\n")
	out := filepath.Join(t.TempDir(), "cardtags.edn")

	_, err := Run(Options{
		Input:     in,
		Output:    out,
		Layout:    tagtable.LayoutUpdated,
		Overrides: []tagtable.Override{{Card: "Hedge Fund", Tag: "Economy"}},
	})
	assert.ErrorIs(t, err, tagtable.ErrMissingCard)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output is written when overrides fail")
}

func TestRun_MissingInput(t *testing.T) {
	_, err := Run(Options{
		Input:  filepath.Join(t.TempDir(), "missing.csv"),
		Output: filepath.Join(t.TempDir(), "cardtags.edn"),
	})
	assert.ErrorIs(t, err, rows.ErrFileAccess)
}

func TestRun_MalformedRow(t *testing.T) {
	in := writeCSV(t, "Sure Gamble,Economy\n\"Diesel,Draw\n")
	_, err := Run(Options{Input: in, Output: filepath.Join(t.TempDir(), "cardtags.edn")})
	assert.ErrorIs(t, err, rows.ErrFormat)
}

func TestRun_InvalidUTF8NamesFail(t *testing.T) {
	in := writeCSV(t, "Card\xff,Economy\nCard\xfe,Draw\n")
	out := filepath.Join(t.TempDir(), "cardtags.edn")

	_, err := Run(Options{Input: in, Output: out, Layout: tagtable.LayoutUpdated})
	assert.ErrorIs(t, err, rows.ErrFormat)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_Repeatable(t *testing.T) {
	in := writeCSV(t, "Sure Gamble,Economy\nDiesel,Draw\nSure Gamble,Economy,Gamble\n")
	opts := Options{Input: in, Layout: tagtable.LayoutUpdated}

	first, err := Load(opts)
	require.NoError(t, err)
	second, err := Load(opts)
	require.NoError(t, err)

	firstEDN, err := ednout.Marshal(first.Table, ednout.Options{})
	require.NoError(t, err)
	secondEDN, err := ednout.Marshal(second.Table, ednout.Options{})
	require.NoError(t, err)
	assert.Equal(t, string(firstEDN), string(secondEDN))
}
