package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []model.Record {
	return []model.Record{
		{Code: "4011", Korean: "바나나", English: "Banana", French: "Banane", Season: "All year"},
		{Code: "3107", Korean: "네이블 오렌지", English: "Orange, Navel", French: "Orange navel", Season: "Winter"},
		{Code: "4260", Korean: "코코넛", English: "Coconut", French: "Noix de coco"},
	}
}

func TestEmbedded(t *testing.T) {
	store, err := Embedded()
	require.NoError(t, err)

	assert.Equal(t, SourceEmbedded, store.Source())
	assert.Greater(t, store.Len(), 40)

	banana, ok := store.Lookup("4011")
	require.True(t, ok)
	assert.Equal(t, "바나나", banana.Korean)
	assert.Equal(t, "Banana", banana.English)

	navel, ok := store.Lookup("3107")
	require.True(t, ok)
	assert.Equal(t, "Orange, Navel, Small", navel.English)

	_, ok = store.Lookup("0000")
	assert.False(t, ok)
}

func TestReadCSV(t *testing.T) {
	input := "PLU, Korean ,english,french,season\n" +
		"4011,바나나,Banana,Banane,All year\n" +
		"3107, 네이블 오렌지 ,\"Orange, Navel\",Orange navel,Winter\n"

	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "네이블 오렌지", records[1].Korean)
	assert.Equal(t, "Orange, Navel", records[1].English)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: common.ErrEmptyDataset},
		{name: "wrong header", input: "code,ko,en,fr,season\n", want: common.ErrInvalidDataset},
		{name: "short row", input: "plu,korean,english,french,season\n4011,바나나\n", want: common.ErrInvalidDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, sample()))

	got, err := ReadCSV(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteYAML(&buf, sample()))
	assert.Contains(t, buf.String(), "plu: \"4011\"")

	got, err := ReadYAML(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestReadYAML_Invalid(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("plu: [unclosed"))
	assert.ErrorIs(t, err, common.ErrInvalidDataset)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "plu.db")

	calls := 0
	require.NoError(t, WriteSQLite(ctx, path, sample(), func() { calls++ }))
	assert.Equal(t, len(sample()), calls)

	src, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	got, err := src.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	// Rebuilding replaces the old file.
	require.NoError(t, WriteSQLite(ctx, path, sample()[:1], nil))
	store, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestOpenSQLite_Missing(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "plu.csv")
	f, err := os.Create(csvPath)
	require.NoError(t, err)
	require.NoError(t, WriteCSV(f, sample()))
	require.NoError(t, f.Close())

	yamlPath := filepath.Join(dir, "plu.yml")
	f, err = os.Create(yamlPath)
	require.NoError(t, err)
	require.NoError(t, WriteYAML(f, sample()))
	require.NoError(t, f.Close())

	for _, path := range []string{csvPath, yamlPath} {
		store, err := Load(ctx, path)
		require.NoError(t, err, path)
		assert.Equal(t, sample(), store.Records())
		assert.Equal(t, path, store.Source())
	}

	store, err := Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, store.Source())

	_, err = Load(ctx, filepath.Join(dir, "plu.json"))
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)

	_, err = Load(ctx, filepath.Join(dir, "absent.csv"))
	assert.Error(t, err)
}

func TestValidateRecords(t *testing.T) {
	assert.ErrorIs(t, validateRecords(nil, "test"), common.ErrEmptyDataset)

	missing := []model.Record{{Code: "4011"}, {Code: ""}}
	assert.ErrorIs(t, validateRecords(missing, "test"), common.ErrInvalidDataset)

	dup := []model.Record{{Code: "4011"}, {Code: "4011"}}
	assert.NoError(t, validateRecords(dup, "test"), "duplicates are tolerated")
}

func TestStore_CopiesInput(t *testing.T) {
	records := sample()
	store := NewStore(records, "test")
	records[0].Code = "changed"
	assert.Equal(t, "4011", store.Records()[0].Code)
}

func TestWriteSQLite_CancelledLeavesNoFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "plu.db")
	require.NoError(t, WriteSQLite(context.Background(), dbPath, sample(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteSQLite(ctx, dbPath, sample(), nil)
	require.Error(t, err)

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr))
}
