package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() *Model {
	m := NewModel()
	b := m.AddBuild("/home/something/top_dir/", []string{"vanilla", "ct"})
	b.AddItem(&Item{
		Name:        "item01",
		BuilderDir:  "/builder/item01/directory/",
		AnalysisDir: "/ins_anal/directory/for/functors",
		CubesDir:    "/where/to/put/cube",
		AnalyzerDir: "/path/to/analyzer",
		RunnerDir:   "/path/to/runner_functors/item01",
		Args:        []string{"param", "1"},
	})
	b.AddItem(&Item{
		Name:       "item02",
		Flavors:    []string{"opt"},
		BuilderDir: "/builder/item02",
		RunnerDir:  "/runner/item02",
	})
	return m
}

func TestModel_DirectoryLookups(t *testing.T) {
	m := sampleModel()

	testCases := []struct {
		name   string
		lookup func(build, item string) (string, error)
		want   string
	}{
		{"builder", m.BuilderDir, "/builder/item01/directory"},
		{"analysis", m.AnalysisDir, "/ins_anal/directory/for/functors"},
		{"runner", m.RunnerDir, "/path/to/runner_functors/item01"},
		{"cubes", m.CubesDir, "/where/to/put/cube"},
		{"analyzer", m.AnalyzerDir, "/path/to/analyzer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.lookup("/home/something/top_dir", "item01")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestModel_BuildKeyIsCleaned(t *testing.T) {
	m := sampleModel()

	got, err := m.BuilderDir("/home/something//top_dir/", "item01")
	require.NoError(t, err)
	assert.Equal(t, "/builder/item01/directory", got)
}

func TestModel_LookupErrors(t *testing.T) {
	m := sampleModel()

	testCases := []struct {
		name    string
		build   string
		item    string
		lookup  func(*Model, string, string) (string, error)
		wantErr error
		wantKey string
	}{
		{
			name:    "unknown build",
			build:   "/nowhere",
			item:    "item01",
			lookup:  (*Model).BuilderDir,
			wantErr: ErrUnknownBuild,
			wantKey: "builder",
		},
		{
			name:    "unknown item",
			build:   "/home/something/top_dir",
			item:    "item99",
			lookup:  (*Model).RunnerDir,
			wantErr: ErrUnknownItem,
			wantKey: "runner",
		},
		{
			name:    "missing directory",
			build:   "/home/something/top_dir",
			item:    "item02",
			lookup:  (*Model).AnalysisDir,
			wantErr: ErrMissingDirectory,
			wantKey: "analysis",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.lookup(m, tc.build, tc.item)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "unexpected error: %v", err)

			var lerr *LookupError
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tc.wantKey, lerr.Key)
			assert.Equal(t, tc.item, lerr.Item)
		})
	}
}

func TestModel_Flavors(t *testing.T) {
	m := sampleModel()

	inherited, err := m.Flavors("/home/something/top_dir", "item01")
	require.NoError(t, err)
	assert.Equal(t, []string{"vanilla", "ct"}, inherited)

	own, err := m.Flavors("/home/something/top_dir", "item02")
	require.NoError(t, err)
	assert.Equal(t, []string{"opt"}, own)

	// The returned slice must not alias the model.
	own[0] = "changed"
	again, err := m.Flavors("/home/something/top_dir", "item02")
	require.NoError(t, err)
	assert.Equal(t, []string{"opt"}, again)
}

func TestCheckFlavor(t *testing.T) {
	m := sampleModel()

	require.NoError(t, CheckFlavor(m, "/home/something/top_dir", "item01", "vanilla"))

	err := CheckFlavor(m, "/home/something/top_dir", "item01", "opt")
	require.ErrorIs(t, err, ErrUnknownFlavor)
	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "opt", lerr.Flavor)
	assert.Contains(t, lerr.Error(), `flavor="opt"`)

	err = CheckFlavor(m, "/home/something/top_dir", "missing", "vanilla")
	require.ErrorIs(t, err, ErrUnknownItem)
}

func TestModel_Targets(t *testing.T) {
	m := sampleModel()
	m.AddBuild("/a/first", []string{"x"}).AddItem(&Item{Name: "only", BuilderDir: "/b"})

	want := []Target{
		{Build: "/a/first", Item: "only", Flavor: "x"},
		{Build: "/home/something/top_dir", Item: "item01", Flavor: "vanilla"},
		{Build: "/home/something/top_dir", Item: "item01", Flavor: "ct"},
		{Build: "/home/something/top_dir", Item: "item02", Flavor: "opt"},
	}
	if diff := cmp.Diff(want, m.Targets()); diff != "" {
		t.Errorf("Targets() mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_Empty(t *testing.T) {
	var nilModel *Model
	assert.True(t, nilModel.Empty())
	assert.True(t, NewModel().Empty())
	assert.False(t, sampleModel().Empty())

	_, err := nilModel.BuilderDir("/x", "y")
	require.ErrorIs(t, err, ErrUnknownBuild)
}

func TestModel_Args(t *testing.T) {
	m := sampleModel()

	args, err := m.Args("/home/something/top_dir", "item01")
	require.NoError(t, err)
	assert.Equal(t, []string{"param", "1"}, args)

	_, err = m.Args("/home/something/top_dir", "nope")
	require.ErrorIs(t, err, ErrUnknownItem)
}
