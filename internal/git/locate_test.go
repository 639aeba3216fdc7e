package git

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/releasekit/verconfig/internal/testutil"
)

func TestOpen_FindsWorktreeRoot(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("README.md", "hello")
	repo.AddCommit("initial commit")

	located, err := Open(repo.Path())
	require.NoError(t, err)
	require.Equal(t, repo.Path(), located.WorkingDirectory())
}

func TestOpen_DetectsDotGitFromSubdirectory(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("sub/dir/file.txt", "x")
	repo.AddCommit("initial commit")

	located, err := Open(filepath.Join(repo.Path(), "sub", "dir"))
	require.NoError(t, err)
	require.Equal(t, repo.Path(), located.WorkingDirectory())
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening git repository")
}

func TestCurrentBranch(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("README.md", "hello")
	sha := repo.AddCommit("initial commit")
	repo.CheckoutBranch("feature/login", sha)

	located, err := Open(repo.Path())
	require.NoError(t, err)

	branch, err := located.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "feature/login", branch)
}
