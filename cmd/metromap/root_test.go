package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metromap/internal/catalog"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"view", "cities", "import", "export"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "metromap", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestCommandFlags(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("db"))
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("dir"))
	require.NotNil(t, viewCmd.Flags().Lookup("dark"))
	require.NotNil(t, importCmd.Flags().Lookup("builtin"))

	out := exportCmd.Flags().Lookup("out")
	require.NotNil(t, out)
	assert.Equal(t, "o", out.Shorthand)
}

func TestCitiesTable(t *testing.T) {
	out := citiesTable([]catalog.Entry{
		{Code: "MUM", Name: "Mumbai", Stations: 39},
		{Code: "DEL", Name: "Delhi"},
	})
	assert.Contains(t, out, "MUM")
	assert.Contains(t, out, "39")
	assert.Contains(t, out, "coming soon")
}

func TestReadCities(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tst.yaml")
	require.NoError(t, os.WriteFile(path, []byte("code: TST\nname: Testville\n"), 0644))

	cities, err := readCities(context.Background(), []string{path}, true)
	require.NoError(t, err)
	require.Len(t, cities, 4)
	assert.Equal(t, "TST", cities[0].Code)
	assert.Equal(t, "MUM", cities[1].Code)

	_, err = readCities(context.Background(), []string{filepath.Join(dir, "missing.yaml")}, false)
	assert.Error(t, err)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		dbFlag, dirFlag, exportOut, importBuiltin = "", "", "", false
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestImportExportCities(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	t.Setenv("METROMAP_LOG_FILE", filepath.Join(dir, "test.log"))
	db := filepath.Join(dir, "cities.db")

	out, err := execute(t, "import", "--builtin", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 cities")

	out, err = execute(t, "cities", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Mumbai")
	assert.Contains(t, out, "Bengaluru")

	out, err = execute(t, "export", "MUM", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "code: MUM")
	assert.Contains(t, out, "LINESTRING")

	file := filepath.Join(dir, "mum.yaml")
	_, err = execute(t, "export", "MUM", "--db", db, "-o", file)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	c, err := catalog.Decode(data, dir)
	require.NoError(t, err)
	assert.Len(t, c.Stations, 39)
}

func TestImportRequiresDB(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	t.Setenv("METROMAP_LOG_FILE", filepath.Join(dir, "test.log"))

	_, err := execute(t, "import", "--builtin")
	assert.Error(t, err)
}
