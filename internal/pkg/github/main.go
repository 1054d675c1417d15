package github

import (
	"fmt"
	"strings"

	"gb2gh/internal/domain/record"
	"gb2gh/internal/errcodes"
	"gb2gh/internal/pkg/client"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// GithubCloudClient writes issues, pull requests and comments to a GitHub
// repository, e.g. https://api.github.com/repos/owner/name
type GithubCloudClient struct {
	baseURL string
	http    *resty.Client
}

type ClientOptions struct {
	BaseURL string
	Token   string
}

func New(o *ClientOptions) *GithubCloudClient {
	return &GithubCloudClient{
		baseURL: strings.TrimRight(o.BaseURL, "/"),
		http:    client.NewRESTClient(&client.Options{Token: o.Token}),
	}
}

func (c *GithubCloudClient) post(url string, body interface{}) (*resty.Response, error) {
	r, err := c.http.R().
		SetHeader("content-type", "application/json").
		SetBody(body).
		SetError(&githubError{}).
		Post(url)
	if err != nil {
		return nil, err
	}

	err = client.CheckResponse(r)
	if err != nil {
		if e, ok := r.Error().(*githubError); ok && e.Message != "" {
			return nil, errors.Wrap(err, e.Message)
		}
		return nil, err
	}

	return r, nil
}

func unmarshalCreated(data []byte) (*record.Created, error) {
	number := gjson.GetBytes(data, "number")
	if number.Type != gjson.Number {
		return nil, errcodes.ErrMissingNumber
	}

	return &record.Created{
		Number: number.Int(),
		URL:    gjson.GetBytes(data, "html_url").String(),
	}, nil
}

func (c *GithubCloudClient) create(url string, body interface{}) (*record.Created, error) {
	r, err := c.post(url, body)
	if err != nil {
		return nil, err
	}

	created, err := unmarshalCreated(r.Body())
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", url)
	}
	log.WithFields(log.Fields{
		"number": created.Number,
		"url":    created.URL,
	}).Debug("created")

	return created, nil
}

func (c *GithubCloudClient) CreateIssue(o *record.CreateIssueOptions) (*record.Created, error) {
	labels := o.Labels
	if labels == nil {
		labels = []string{}
	}
	assignees := o.Assignees
	if assignees == nil {
		assignees = []string{}
	}

	return c.create(
		fmt.Sprintf("%s/issues", c.baseURL),
		ghIssueOptions{
			Title:     o.Title,
			Body:      o.Body,
			Labels:    labels,
			Assignees: assignees,
		},
	)
}

func verifyCreatePullRequestOptions(o *record.CreatePullRequestOptions) error {
	if o.Head == "" {
		return errors.Wrap(errcodes.ErrMissingBranch, "head")
	}

	if o.Base == "" {
		return errors.Wrap(errcodes.ErrMissingBranch, "base")
	}

	return nil
}

func (c *GithubCloudClient) CreatePullRequest(o *record.CreatePullRequestOptions) (*record.Created, error) {
	err := verifyCreatePullRequestOptions(o)
	if err != nil {
		return nil, err
	}

	return c.create(
		fmt.Sprintf("%s/pulls", c.baseURL),
		ghPROptions{
			Title: o.Title,
			Body:  o.Body,
			Head:  o.Head,
			Base:  o.Base,
			Draft: o.Draft,
		},
	)
}

// CreateComment comments on an issue or a pull request. Both share the
// issue number space on GitHub.
func (c *GithubCloudClient) CreateComment(o *record.CreateCommentOptions) error {
	_, err := c.post(
		fmt.Sprintf("%s/issues/%d/comments", c.baseURL, o.Number),
		ghCommentOptions{Body: o.Body},
	)

	return err
}

func (c *GithubCloudClient) Close(o *record.CloseOptions) error {
	_, err := c.post(
		fmt.Sprintf("%s/issues/%d", c.baseURL, o.Number),
		ghStateOptions{State: string(record.StateClosed)},
	)

	return err
}
