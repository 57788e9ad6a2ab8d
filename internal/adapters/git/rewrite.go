package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/renato0307/trainmerge/internal/logging"
)

// RewriteCommitMessages implements GitClient.RewriteCommitMessages.
// Commits are re-encoded along the first-parent chain from ref down to base; trees,
// authors and committers are kept, signatures are dropped.
func (c *CLIClient) RewriteCommitMessages(ctx context.Context, base, ref string, rewrite func(message string) string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(c.repoDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	baseHash, err := repo.ResolveRevision(plumbing.Revision(base))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", base, err)
	}

	refName, tipHash, err := resolveRewriteTarget(repo, ref)
	if err != nil {
		return "", err
	}

	commits, err := firstParentRange(repo, *baseHash, tipHash)
	if err != nil {
		return "", err
	}
	if len(commits) == 0 {
		return tipHash.String(), nil
	}

	rewritten := make(map[plumbing.Hash]plumbing.Hash, len(commits))
	newTip := tipHash
	for _, commit := range commits {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		updated := *commit
		updated.Message = rewrite(commit.Message)
		updated.PGPSignature = ""
		updated.ParentHashes = make([]plumbing.Hash, len(commit.ParentHashes))
		for i, parent := range commit.ParentHashes {
			if mapped, ok := rewritten[parent]; ok {
				parent = mapped
			}
			updated.ParentHashes[i] = parent
		}

		obj := repo.Storer.NewEncodedObject()
		if err := updated.Encode(obj); err != nil {
			return "", fmt.Errorf("failed to encode commit %s: %w", commit.Hash, err)
		}
		hash, err := repo.Storer.SetEncodedObject(obj)
		if err != nil {
			return "", fmt.Errorf("failed to store commit %s: %w", commit.Hash, err)
		}
		rewritten[commit.Hash] = hash
		newTip = hash
	}

	if err := repo.Storer.SetReference(plumbing.NewHashReference(refName, newTip)); err != nil {
		return "", fmt.Errorf("failed to update %s: %w", refName, err)
	}

	logging.Logger.Debug("Rewrote commit messages",
		"base", base,
		"ref", refName.String(),
		"count", len(commits),
		"old_tip", tipHash.String(),
		"new_tip", newTip.String())

	return newTip.String(), nil
}

// resolveRewriteTarget maps HEAD or a branch name to the reference that must be moved
func resolveRewriteTarget(repo *gogit.Repository, ref string) (plumbing.ReferenceName, plumbing.Hash, error) {
	if ref == "HEAD" {
		head, err := repo.Storer.Reference(plumbing.HEAD)
		if err != nil {
			return "", plumbing.ZeroHash, fmt.Errorf("failed to read HEAD: %w", err)
		}
		if head.Type() == plumbing.SymbolicReference {
			target, err := repo.Reference(head.Target(), true)
			if err != nil {
				return "", plumbing.ZeroHash, fmt.Errorf("failed to resolve %s: %w", head.Target(), err)
			}
			return head.Target(), target.Hash(), nil
		}
		return plumbing.HEAD, head.Hash(), nil
	}

	name := plumbing.NewBranchReferenceName(ref)
	branch, err := repo.Reference(name, true)
	if err != nil {
		return "", plumbing.ZeroHash, fmt.Errorf("failed to resolve branch %s: %w", ref, err)
	}
	return name, branch.Hash(), nil
}

// firstParentRange returns the commits reachable from tip down to (excluding) base, oldest first
func firstParentRange(repo *gogit.Repository, base, tip plumbing.Hash) ([]*object.Commit, error) {
	var commits []*object.Commit

	current, err := repo.CommitObject(tip)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", tip, err)
	}
	for current.Hash != base {
		commits = append(commits, current)
		if current.NumParents() == 0 {
			return nil, fmt.Errorf("%s is not an ancestor of %s", base, tip)
		}
		current, err = current.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent of %s: %w", commits[len(commits)-1].Hash, err)
		}
	}

	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
	return commits, nil
}
