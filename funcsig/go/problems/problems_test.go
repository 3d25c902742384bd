package problems

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/interviewkickstart/funcsig/funcsig/go/sigcache"
	"github.com/interviewkickstart/funcsig/funcsig/go/signature"
	"github.com/interviewkickstart/funcsig/go/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAMLAndJSON(t *testing.T) {
	p, err := Load(testutils.TestDataFilename(t, "two_sum.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Problem{
		Name:              "two_sum",
		FunctionSignature: "list[int32] two_sum(numbers:list[int32], target:int32)",
	}, p)

	p, err = Load(testutils.TestDataFilename(t, "reverse_list.json"))
	require.NoError(t, err)
	assert.Equal(t, "reverse_list", p.Name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(testutils.TestDataFilename(t, "broken", "missing_signature.yaml"))
	assert.ErrorContains(t, err, "missing function_signature")

	_, err = Load(testutils.TestDataFilename(t, "broken", "unknown_field.yaml"))
	assert.ErrorContains(t, err, "decoding")

	_, err = Load(testutils.TestDataFilename(t, "does_not_exist.yaml"))
	assert.ErrorContains(t, err, "reading")
}

func TestFindFiles_SkipsOtherExtensions(t *testing.T) {
	dir := testutils.TestDataFilename(t)
	files, err := FindFiles(dir)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{
		"bad_name.yaml",
		"broken/missing_signature.yaml",
		"broken/unknown_field.yaml",
		"nested/merge.yml",
		"reverse_list.json",
		"two_sum.yaml",
	}, rel)
}

func TestValidateFiles_AllValid(t *testing.T) {
	paths := []string{
		testutils.TestDataFilename(t, "two_sum.yaml"),
		testutils.TestDataFilename(t, "reverse_list.json"),
		testutils.TestDataFilename(t, "nested", "merge.yml"),
	}
	results, err := ValidateFiles(context.Background(), paths, Options{Workers: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		assert.NoError(t, r.Err)
		require.NotNil(t, r.Signature)
		assert.Equal(t, r.Problem.Name, r.Signature.Name())
	}
}

func TestValidateFiles_CollectsEveryFailure(t *testing.T) {
	dir := testutils.TestDataFilename(t)
	paths, err := FindFiles(dir)
	require.NoError(t, err)

	results, err := ValidateFiles(context.Background(), paths, Options{})
	require.Error(t, err)
	require.Len(t, results, len(paths))

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)
	assert.ErrorIs(t, err, signature.ErrInvalidName)

	assert.Equal(t, "bad_name", results[0].Problem.Name)
	assert.ErrorIs(t, results[0].Err, signature.ErrInvalidName)
	assert.Nil(t, results[1].Problem)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[5].Err)
}

func TestValidateFiles_OptionsReachTheParser(t *testing.T) {
	paths := []string{testutils.TestDataFilename(t, "bad_name.yaml")}
	cache, err := sigcache.New("problems_test", 4)
	require.NoError(t, err)

	results, err := ValidateFiles(context.Background(), paths, Options{
		Signature: signature.Options{AllowUppercaseNames: true},
		Parser:    cache,
	})
	require.NoError(t, err)
	assert.Equal(t, "Solve", results[0].Signature.Name())
	assert.Equal(t, 1, cache.Len())
}

func TestValidateFiles_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ValidateFiles(ctx, []string{testutils.TestDataFilename(t, "two_sum.yaml")}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
