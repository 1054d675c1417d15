package clientutils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gb2gh/internal/config"
	"gb2gh/internal/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sourcePath = "/api/v3/repos/owner/repo"
	targetPath = "/repos/owner/repo"
)

var scenario = map[string]string{
	"/issues?page=1&state=open": `[
		{"number": 3, "title": "Issue three", "body": "b3", "state": "open", "labels": [{"name": "bug"}]}
	]`,
	"/pulls?page=1&state=closed": `[
		{"number": 5, "title": "Pull five", "body": "b5", "state": "closed", "merged": false,
		 "head": {"ref": "old"}, "base": {"ref": "master"}}
	]`,
	"/pulls?page=1&state=open": `[
		{"number": 7, "title": "Pull seven", "body": "b7", "state": "open", "merged": null,
		 "head": {"ref": "feature"}, "base": {"ref": "master"}}
	]`,
	"/issues/3/comments": `[{"body": "first", "user": {"login": "a"}}, {"body": "second", "user": {"login": "b"}}]`,
	"/issues/7/comments": `[{"body": "looks good", "user": {"login": "c"}}]`,
}

func serveSource(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, sourcePath)
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}

	body, ok := scenario[key]
	if !ok {
		body = "[]"
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

type written struct {
	Path string
	Body string
}

// fakeGithub numbers created items from 100 so target and source numbers
// cannot be confused.
type fakeGithub struct {
	written []written
	next    int
}

func (f *fakeGithub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.written = append(f.written, written{
		Path: fmt.Sprintf("%s %s", r.Method, strings.TrimPrefix(r.URL.Path, targetPath)),
		Body: string(body),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if r.URL.Path == targetPath+"/issues" || r.URL.Path == targetPath+"/pulls" {
		f.next++
		fmt.Fprintf(w, `{"number": %d, "html_url": "https://github.com/owner/repo/issues/%d"}`, 99+f.next, 99+f.next)
		return
	}
	w.Write([]byte(`{}`))
}

func TestMigrateThroughClients(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(serveSource))
	t.Cleanup(source.Close)
	gh := &fakeGithub{}
	target := httptest.NewServer(gh)
	t.Cleanup(target.Close)

	c := &config.Config{
		Source: config.Endpoint{URL: source.URL + sourcePath, Token: "s", Master: "master"},
		Target: config.Endpoint{URL: target.URL + targetPath, Token: "t", Master: "main"},
		Owner:  "octo",
	}

	records, err := ClientFactory{}.Source(c).FetchAll()
	require.NoError(t, err)
	summary, err := record.NewMigrateService(ClientFactory{}.Target(c), c.WriteOptions()).WriteAll(records)
	require.NoError(t, err)

	expected := []written{
		{"POST /issues", `{"title": "Issue three", "body": "b3", "labels": ["bug"], "assignees": ["octo"]}`},
		{"POST /issues/100/comments", `{"body": "first"}`},
		{"POST /issues/100/comments", `{"body": "second"}`},
		{"POST /issues", fmt.Sprintf(
			`{"title": "[PULL] Pull five", "body": %q, "labels": ["wontfix"], "assignees": ["octo"]}`,
			record.PlaceholderBody,
		)},
		{"POST /issues/101", `{"state": "closed"}`},
		{"POST /pulls", `{"title": "Pull seven", "body": "b7", "head": "feature", "base": "main", "draft": false}`},
		{"POST /issues/102/comments", `{"body": "looks good"}`},
	}
	require.Len(t, gh.written, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.Path, gh.written[i].Path)
		assert.JSONEq(t, e.Body, gh.written[i].Body, e.Path)
	}
	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, 1, summary.Closed)
}
