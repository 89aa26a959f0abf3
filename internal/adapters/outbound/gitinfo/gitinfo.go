// Package gitinfo reads version-control metadata used to annotate reports.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// RepoInfo implements domain.GitInfo using go-git. The audited tree does not
// have to be a repository: a failed open simply means the report carries no
// commit annotation.
type RepoInfo struct{}

func New() *RepoInfo {
	return &RepoInfo{}
}

func (r *RepoInfo) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// CommitHash returns the full SHA-1 of HEAD for the audited tree. Shortening
// for display is the renderer's concern.
func (r *RepoInfo) CommitHash(projectPath string) (string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
