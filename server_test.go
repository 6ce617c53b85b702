package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosecheck/prosecheck/config"
	"github.com/prosecheck/prosecheck/internal/checker"
	"github.com/prosecheck/prosecheck/internal/checker/dupword"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.NewConfig("")
	require.NoError(t, err)
	return &Server{config: cfg}
}

func TestHandleCheckText(t *testing.T) {
	s := newTestServer(t)

	body := `{"name": "draft.md", "text": "This was very clearly written. It it was fine."}`
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.handleCheckText(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp checkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var found []string
	for _, issue := range resp.Issues {
		assert.Equal(t, "draft.md", issue.File)
		found = append(found, issue.Checker+":"+issue.Text)
	}
	assert.Contains(t, found, "weasel:very")
	assert.Contains(t, found, "weasel:clearly")
	assert.Contains(t, found, "dupword:it")
	assert.Equal(t, dupword.ScanCompleteNotice, resp.Notice)
}

func TestHandleCheckTextSubsetAndRange(t *testing.T) {
	s := newTestServer(t)

	body := `{"text": "very first, very last", "checkers": ["weasel"], "start": 10, "end": 21}`
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.handleCheckText(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp checkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "very", resp.Issues[0].Text)
	assert.Equal(t, 12, resp.Issues[0].Start)
	// no duplicate checker ran, so no terminal notice
	assert.Empty(t, resp.Notice)
}

func TestHandleCheckTextEmptyReport(t *testing.T) {
	s := newTestServer(t)

	body := `{"text": "Plain factual prose."}`
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.handleCheckText(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp checkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Issues)
	assert.Equal(t, dupword.ScanCompleteNotice, resp.Notice)
}

func TestHandleCheckTextRejects(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	w := httptest.NewRecorder()
	s.handleCheckText(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/check", strings.NewReader("{"))
	w = httptest.NewRecorder()
	s.handleCheckText(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(`{"text":"x","checkers":["nope"]}`))
	w = httptest.NewRecorder()
	s.handleCheckText(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuildPullRequestComments(t *testing.T) {
	commitFiles := []*github.CommitFile{
		{
			Filename:    github.String("docs/guide.md"),
			ContentsURL: github.String("https://api.github.com/repos/org/repo/contents/docs/guide.md?ref=abc123"),
		},
	}
	issues := []checker.Issue{
		{File: "docs/guide.md", Line: 4, Text: "very", Message: `weasel word "very"`, Checker: "weasel"},
		{File: "other.md", Line: 1, Text: "very", Message: `weasel word "very"`, Checker: "weasel"},
	}

	comments := buildPullRequestComments(issues, commitFiles)
	require.Len(t, comments, 1)
	c := comments[0]
	assert.Equal(t, "docs/guide.md", c.GetPath())
	assert.Equal(t, 4, c.GetLine())
	assert.Equal(t, "abc123", c.GetCommitID())
	assert.Equal(t, `[weasel] weasel word "very"`, c.GetBody())
	assert.Equal(t, "RIGHT", c.GetSide())
}

func TestIsProseFile(t *testing.T) {
	assert.True(t, isProseFile("docs/guide.md"))
	assert.True(t, isProseFile("notes.txt"))
	assert.False(t, isProseFile("main.go"))
	assert.False(t, isProseFile("Makefile"))
}
