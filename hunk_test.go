package main

import (
	"reflect"
	"testing"

	"github.com/google/go-github/v57/github"
)

func TestParsePatch(t *testing.T) {
	tcs := []struct {
		name     string
		patch    string
		expected []Hunk
	}{
		{
			name:     "single_hunk",
			patch:    "@@ -132,7 +132,7 @@ some context",
			expected: []Hunk{{StartLine: 132, EndLine: 138}},
		},
		{
			name:  "multiple_hunks",
			patch: "@@ -1,4 +1,6 @@ intro @@ -1000,7 +1010,3 @@ outro",
			expected: []Hunk{
				{StartLine: 1, EndLine: 6},
				{StartLine: 1010, EndLine: 1012},
			},
		},
		{
			name:     "no_hunks",
			patch:    "not a patch",
			expected: nil,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePatch(tc.patch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("\nexpected: %v,\ngot: %v", tc.expected, got)
			}
		})
	}
}

func TestInHunk(t *testing.T) {
	checker, err := NewGithubCommitFileHunkChecker([]*github.CommitFile{
		{
			Filename: github.String("docs/guide.md"),
			Patch:    github.String("@@ -10,4 +10,6 @@ heading"),
		},
		{
			Filename: github.String("gone.md"),
			Status:   github.String("removed"),
			Patch:    github.String("@@ -1,2 +1,2 @@"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !checker.InHunk("docs/guide.md", 12) {
		t.Error("line 12 should be in hunk 10-15")
	}
	if checker.InHunk("docs/guide.md", 16) {
		t.Error("line 16 should be outside hunk 10-15")
	}
	if checker.InHunk("gone.md", 1) {
		t.Error("removed files have no hunks")
	}
	if checker.InHunk("unknown.md", 1) {
		t.Error("unknown files have no hunks")
	}
}
