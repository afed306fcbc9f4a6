package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiptools/shiptools/internal/classify"
)

func TestClassify_EmptySet(t *testing.T) {
	t.Parallel()

	_, err := classify.Classify(classify.ChangeSet{})
	require.ErrorIs(t, err, classify.ErrEmptyChangeSet)
}

func TestClassify_VersionBump(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"pyproject.toml"},
		Bump:  &classify.VersionBump{Old: "1.2.0", New: "1.3.0"},
	})
	require.NoError(t, err)
	assert.Equal(t, "chore(release): v1.3.0", msg.String())
}

func TestClassify_VersionBumpWithStat(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"pyproject.toml", "uv.lock"},
		Bump:  &classify.VersionBump{Old: "1.2.0", New: "1.3.0"},
		Stat:  &classify.DiffStat{FilesChanged: 2, Insertions: 10, Deletions: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, "chore(release): v1.3.0 (2 files, +10/-10)", msg.String())
}

func TestClassify_SingleLockFile(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{Paths: []string{"uv.lock"}})
	require.NoError(t, err)
	assert.Equal(t, "chore(lock): update uv.lock", msg.String())
}

func TestClassify_SingleIgnoreFile(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{Paths: []string{".gitignore"}})
	require.NoError(t, err)
	assert.Equal(t, "chore(git): update .gitignore", msg.String())
}

func TestClassify_DocsOnly(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"docs/guide.md", "README.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, "docs", msg.Type)
	assert.Empty(t, msg.Scope)
	assert.Equal(t, "docs: update documentation", msg.String())
}

func TestClassify_TestsOnly(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"tests/test_core.py", "tests/conftest.py"},
	})
	require.NoError(t, err)
	assert.Equal(t, "test: update tests", msg.String())
}

func TestClassify_ScriptsOnly(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"scripts/release.sh"},
	})
	require.NoError(t, err)
	assert.Equal(t, "chore(scripts): update scripts", msg.String())
}

func TestClassify_ConfigOnly(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"pyproject.toml", ".editorconfig"},
	})
	require.NoError(t, err)
	assert.Equal(t, "chore(config): update configuration", msg.String())
}

func TestClassify_SourceAdded(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths:       []string{"src/app/core.py", "src/app/io.py"},
		Added:       []string{"src/app/io.py"},
		SourceLabel: "Python sources",
	})
	require.NoError(t, err)
	assert.Equal(t, "feat: update Python sources", msg.String())
}

func TestClassify_SourceModifiedOnly(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"src/app/core.py"},
		Stat:  &classify.DiffStat{FilesChanged: 1, Insertions: 4, Deletions: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "fix: update source (1 file, +4/-2)", msg.String())
}

func TestClassify_SourceBeatsMixedCategories(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"src/app/core.py", "docs/guide.md", "tests/test_core.py"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fix", msg.Type)
}

func TestClassify_MixedTwoCategories(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"docs/guide.md", "tests/test_core.py"},
	})
	require.NoError(t, err)
	assert.Equal(t, "chore: update docs and tests", msg.String())
}

func TestClassify_MixedManyCategories(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"docs/guide.md", "tests/test_core.py", "scripts/ci.sh"},
	})
	require.NoError(t, err)
	assert.Equal(t, "chore: update multiple areas", msg.String())
}

func TestClassify_CodeOutsideSourceTree(t *testing.T) {
	t.Parallel()

	msg, err := classify.Classify(classify.ChangeSet{
		Paths: []string{"main.py"},
		Added: []string{"main.py"},
	})
	require.NoError(t, err)
	assert.Equal(t, "feat(code): update code", msg.String())
}

func TestDiffStat_Suffix(t *testing.T) {
	t.Parallel()

	var nilStat *classify.DiffStat
	assert.Empty(t, nilStat.Suffix())

	assert.Empty(t, (&classify.DiffStat{}).Suffix())

	stat := &classify.DiffStat{FilesChanged: 3, Insertions: 1204, Deletions: 89}
	assert.Equal(t, " (3 files, +1,204/-89)", stat.Suffix())
}

func TestDetectVersionBump_PyprojectBumped(t *testing.T) {
	t.Parallel()

	oldContent := []byte("[project]\nname = \"demo\"\nversion = \"0.4.1\"\n")
	newContent := []byte("[project]\nname = \"demo\"\nversion = \"0.5.0\"\n")

	bump := classify.DetectVersionBump("pyproject.toml", oldContent, newContent)
	require.NotNil(t, bump)
	assert.Equal(t, "0.4.1", bump.Old)
	assert.Equal(t, "0.5.0", bump.New)
}

func TestDetectVersionBump_NoChange(t *testing.T) {
	t.Parallel()

	content := []byte("[project]\nversion = \"0.4.1\"\ndependencies = []\n")
	changed := []byte("[project]\nversion = \"0.4.1\"\ndependencies = [\"rich\"]\n")

	assert.Nil(t, classify.DetectVersionBump("pyproject.toml", content, changed))
}

func TestDetectVersionBump_PackageJSON(t *testing.T) {
	t.Parallel()

	oldContent := []byte("{\n  \"name\": \"demo\",\n  \"version\": \"2.0.0\"\n}\n")
	newContent := []byte("{\n  \"name\": \"demo\",\n  \"version\": \"2.1.0\"\n}\n")

	bump := classify.DetectVersionBump("package.json", oldContent, newContent)
	require.NotNil(t, bump)
	assert.Equal(t, "2.1.0", bump.New)
}

func TestDetectVersionBump_UnknownManifest(t *testing.T) {
	t.Parallel()

	assert.Nil(t, classify.DetectVersionBump("notes.txt", nil, []byte("version = \"1.0\"\n")))
}

func TestIsManifest(t *testing.T) {
	t.Parallel()

	assert.True(t, classify.IsManifest("pyproject.toml"))
	assert.True(t, classify.IsManifest("package.json"))
	assert.False(t, classify.IsManifest("uv.lock"))
}

func TestDetectSourceLabel_DominantLanguage(t *testing.T) {
	t.Parallel()

	label := classify.DetectSourceLabel(map[string][]byte{
		"src/app/core.py":     []byte("import os\n\n\ndef main():\n    pass\n"),
		"src/app/util.py":     []byte("def helper():\n    return 1\n"),
		"docs/readme.md":      []byte("# readme\n"),
		"src/app/notes.xyzzy": nil,
	})

	assert.Equal(t, "Python sources", label)
}

func TestDetectSourceLabel_NoSource(t *testing.T) {
	t.Parallel()

	assert.Empty(t, classify.DetectSourceLabel(map[string][]byte{
		"docs/guide.md": []byte("# guide\n"),
	}))
}
