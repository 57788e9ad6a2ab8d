package git

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendTrailer(message string) string {
	return strings.TrimRight(message, " \n") + "\n\nPR Close #7"
}

func TestRewriteCommitMessages_Branch(t *testing.T) {
	dir := setupTestRepo(t)
	client := NewCLIClient(dir, "", "")
	base := runGit(t, dir, "rev-parse", "HEAD")

	runGit(t, dir, "checkout", "-q", "-b", "feature")
	commitFile(t, dir, "a.txt", "a", "feat: a")
	commitFile(t, dir, "b.txt", "b", "fix: b")
	oldTree := runGit(t, dir, "rev-parse", "HEAD^{tree}")
	runGit(t, dir, "checkout", "-q", "main")

	newTip, err := client.RewriteCommitMessages(context.Background(), base, "feature", appendTrailer)
	require.NoError(t, err)

	assert.Equal(t, newTip, runGit(t, dir, "rev-parse", "feature"))
	assert.Equal(t, oldTree, runGit(t, dir, "rev-parse", "feature^{tree}"))
	assert.Equal(t, "2", runGit(t, dir, "rev-list", "--count", base+"..feature"))

	log := runGit(t, dir, "log", "--format=%B%x00", base+"..feature")
	messages := strings.Split(strings.Trim(log, "\x00\n"), "\x00")
	require.Len(t, messages, 2)
	for _, m := range messages {
		assert.Contains(t, m, "PR Close #7")
	}
	assert.Contains(t, runGit(t, dir, "log", "-1", "--format=%B", "feature~1"), "feat: a")
}

func TestRewriteCommitMessages_DetachedHead(t *testing.T) {
	dir := setupTestRepo(t)
	client := NewCLIClient(dir, "", "")
	base := runGit(t, dir, "rev-parse", "HEAD")

	runGit(t, dir, "checkout", "-q", "--detach")
	commitFile(t, dir, "a.txt", "a", "feat: a")

	newTip, err := client.RewriteCommitMessages(context.Background(), base, "HEAD", appendTrailer)
	require.NoError(t, err)

	assert.Equal(t, newTip, runGit(t, dir, "rev-parse", "HEAD"))
	assert.Equal(t, "HEAD", runGit(t, dir, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.Equal(t, "feat: a\n\nPR Close #7", runGit(t, dir, "log", "-1", "--format=%B"))
	assert.Empty(t, runGit(t, dir, "status", "--porcelain", "-uno"))
}

func TestRewriteCommitMessages_CheckedOutBranch(t *testing.T) {
	dir := setupTestRepo(t)
	client := NewCLIClient(dir, "", "")
	base := runGit(t, dir, "rev-parse", "HEAD")
	commitFile(t, dir, "a.txt", "a", "feat: a")

	newTip, err := client.RewriteCommitMessages(context.Background(), base, "HEAD", appendTrailer)
	require.NoError(t, err)

	assert.Equal(t, "main", runGit(t, dir, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.Equal(t, newTip, runGit(t, dir, "rev-parse", "main"))
}

func TestRewriteCommitMessages_EmptyRange(t *testing.T) {
	dir := setupTestRepo(t)
	client := NewCLIClient(dir, "", "")
	head := runGit(t, dir, "rev-parse", "HEAD")

	tip, err := client.RewriteCommitMessages(context.Background(), head, "main", appendTrailer)

	require.NoError(t, err)
	assert.Equal(t, head, tip)
}

func TestRewriteCommitMessages_BaseNotAncestor(t *testing.T) {
	dir := setupTestRepo(t)
	client := NewCLIClient(dir, "", "")

	runGit(t, dir, "checkout", "-q", "-b", "other")
	other := commitFile(t, dir, "o.txt", "o", "chore: other")
	runGit(t, dir, "checkout", "-q", "main")
	commitFile(t, dir, "a.txt", "a", "feat: a")

	_, err := client.RewriteCommitMessages(context.Background(), other, "main", appendTrailer)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an ancestor")
}
