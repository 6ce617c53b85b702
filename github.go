/*
 Copyright 2024 Qiniu Cloud (qiniu.com).

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/qiniu/x/log"

	"github.com/prosecheck/prosecheck/internal/checker"
)

// ListPullRequestsFiles lists all files for the specified pull request.
func ListPullRequestsFiles(ctx context.Context, gc *github.Client, owner string, repo string, number int) ([]*github.CommitFile, *github.Response, error) {
	opts := github.ListOptions{
		PerPage: 100,
	}

	var pullRequestAffectedFiles []*github.CommitFile

	for {
		files, response, err := gc.PullRequests.ListFiles(ctx, owner, repo, number, &opts)
		if err != nil {
			return nil, nil, err
		}

		pullRequestAffectedFiles = append(pullRequestAffectedFiles, files...)

		if response.NextPage == 0 {
			return pullRequestAffectedFiles, response, nil
		}

		opts.Page++
	}
}

// PostPullReviewCommentsWithRetry posts the comments that do not already
// exist on the pull request, retrying transient failures with backoff.
func PostPullReviewCommentsWithRetry(ctx context.Context, gc *github.Client, owner string, repo string, number int, comments []*github.PullRequestComment) error {
	var existedComments []*github.PullRequestComment
	err := retryWithBackoff(ctx, func() error {
		originalComments, resp, err := gc.PullRequests.ListComments(ctx, owner, repo, number, nil)
		if err != nil {
			return err
		}

		if resp.StatusCode != 200 {
			return fmt.Errorf("list comments failed: %v", resp)
		}

		existedComments = originalComments
		return nil
	})

	if err != nil {
		return err
	}

	for _, comment := range comments {
		var existed bool
		for _, existedComment := range existedComments {
			if comment.GetPath() == existedComment.GetPath() &&
				comment.GetLine() == existedComment.GetLine() &&
				comment.GetBody() == existedComment.GetBody() {
				existed = true
				break
			}
		}

		if existed {
			continue
		}

		err := retryWithBackoff(ctx, func() error {
			_, resp, err := gc.PullRequests.CreateComment(ctx, owner, repo, number, comment)
			if err != nil {
				return err
			}
			if resp.StatusCode != 201 {
				return fmt.Errorf("create comment failed: %v", resp)
			}
			return nil
		})

		if err != nil {
			return err
		}

		log.Infof("create comment success: %v", comment)
	}
	return nil
}

func retryWithBackoff(ctx context.Context, f func() error) error {
	var backoff = time.Second
	for i := 0; i < 5; i++ {
		err := f()
		if err == nil {
			return nil
		}

		log.Errorf("retrying after error: %v", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	return fmt.Errorf("failed after 5 retries")
}

// GetCommitIDFromContentsURL extracts the commit id from a commit file's
// contents URL, e.g. .../contents/path/to/file?ref=commit_id.
func GetCommitIDFromContentsURL(contentsURL string) (string, error) {
	contentsURLRegex := regexp.MustCompile(`ref=(.*)$`)
	matches := contentsURLRegex.FindStringSubmatch(contentsURL)
	if len(matches) != 2 {
		return "", fmt.Errorf("invalid contentsURL: %s", contentsURL)
	}

	return matches[1], nil
}

// buildPullRequestComments turns style issues into review comments on the
// lines that introduced them.
func buildPullRequestComments(issues []checker.Issue, commitFiles []*github.CommitFile) []*github.PullRequestComment {
	commitIDs := make(map[string]string, len(commitFiles))
	for _, commitFile := range commitFiles {
		commitID, err := GetCommitIDFromContentsURL(commitFile.GetContentsURL())
		if err != nil {
			log.Errorf("failed to get commit id from contents url, err: %v, url: %v", err, commitFile.GetContentsURL())
			continue
		}
		commitIDs[commitFile.GetFilename()] = commitID
	}

	var comments []*github.PullRequestComment
	for _, issue := range issues {
		commitID, ok := commitIDs[issue.File]
		if !ok {
			continue
		}

		message := fmt.Sprintf("[%s] %s", issue.Checker, issue.Message)
		comments = append(comments, &github.PullRequestComment{
			Body:     github.String(message),
			Path:     github.String(issue.File),
			Line:     github.Int(issue.Line),
			Side:     github.String("RIGHT"),
			CommitID: github.String(commitID),
		})
	}

	return comments
}
