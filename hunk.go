package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/go-github/v57/github"
	"github.com/qiniu/x/log"
)

// Hunk is a changed line range on the new side of a diff.
type Hunk struct {
	StartLine int
	EndLine   int
}

var patchRegex = regexp.MustCompile(`@@ \-(\d+),(\d+) \+(\d+),(\d+) @@`)

// ParsePatch extracts the new-side hunks from a unified diff patch.
func ParsePatch(patch string) ([]Hunk, error) {
	var hunks []Hunk

	groups := patchRegex.FindAllStringSubmatch(patch, -1)
	for _, group := range groups {
		if len(group) != 5 {
			return nil, fmt.Errorf("invalid patch: %s", patch)
		}
		startLine, err := strconv.Atoi(group[3])
		if err != nil {
			return nil, fmt.Errorf("invalid patch: %s, startLine: %s", patch, group[3])
		}

		length, err := strconv.Atoi(group[4])
		if err != nil {
			return nil, fmt.Errorf("invalid patch: %s, length: %s", patch, group[4])
		}

		hunks = append(hunks, Hunk{
			StartLine: startLine,
			EndLine:   startLine + length - 1,
		})
	}

	return hunks, nil
}

// GithubCommitFileHunkChecker answers whether a file line was touched by a
// pull request. Issues outside the touched hunks are not commented on.
type GithubCommitFileHunkChecker struct {
	// map[file][]hunks
	Hunks map[string][]Hunk
}

func NewGithubCommitFileHunkChecker(commitFiles []*github.CommitFile) (*GithubCommitFileHunkChecker, error) {
	hunks := make(map[string][]Hunk)
	for _, commitFile := range commitFiles {
		if commitFile == nil || commitFile.GetPatch() == "" {
			continue
		}

		if commitFile.GetStatus() == "removed" {
			continue
		}

		fileHunks, err := ParsePatch(commitFile.GetPatch())
		if err != nil {
			return nil, err
		}

		if v, ok := hunks[commitFile.GetFilename()]; ok {
			log.Warnf("duplicate commitFiles: %v, %v", commitFile, v)
			continue
		}

		hunks[commitFile.GetFilename()] = fileHunks
	}

	return &GithubCommitFileHunkChecker{
		Hunks: hunks,
	}, nil
}

func (c *GithubCommitFileHunkChecker) InHunk(file string, line int) bool {
	for _, hunk := range c.Hunks[file] {
		if line >= hunk.StartLine && line <= hunk.EndLine {
			return true
		}
	}

	return false
}
