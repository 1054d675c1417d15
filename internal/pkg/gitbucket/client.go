package gitbucket

import (
	"fmt"
	"strings"

	"gb2gh/internal/domain/record"
	"gb2gh/internal/pkg/client"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ListingIssues = "issues"
	ListingPulls  = "pulls"
)

var (
	listings = []string{ListingIssues, ListingPulls}
	states   = []record.State{record.StateOpen, record.StateClosed}
)

// Client reads issues and pull requests from a GitBucket repository through
// its GitHub compatible v3 API, e.g.
// http://gitbucket.example.com/api/v3/repos/owner/name
type Client struct {
	baseURL string
	http    *resty.Client
}

type ClientOptions struct {
	BaseURL string
	Token   string
}

func New(o *ClientOptions) *Client {
	return &Client{
		baseURL: strings.TrimRight(o.BaseURL, "/"),
		http:    client.NewRESTClient(&client.Options{Token: o.Token}),
	}
}

// Pages returns a lazy page sequence over one listing in one state.
func (c *Client) Pages(listing string, state record.State) *pageIterator[record.Record] {
	return newPageIterator(&newPageIteratorOptions[record.Record]{
		Client:     c,
		RequestURL: fmt.Sprintf("%s/%s", c.baseURL, listing),
		State:      state,
		Parse:      parseRecord,
	})
}

// FetchAll lists issues and pull requests in both states, orders them by
// number and attaches the comments of each one.
func (c *Client) FetchAll() ([]record.Record, error) {
	records := []record.Record{}
	for _, listing := range listings {
		for _, state := range states {
			list, err := c.Pages(listing, state).GetAll()
			if err != nil {
				return nil, errors.Wrapf(err, "could not list %s %s", state, listing)
			}
			log.WithFields(log.Fields{
				"listing": listing,
				"state":   state,
				"count":   len(list),
			}).Debug("listing fetched")

			records = append(records, list...)
		}
	}
	record.SortByNumber(records)

	for _, r := range records {
		comments, err := c.FetchComments(r.Info())
		if err != nil {
			return nil, errors.Wrapf(err, "could not fetch comments of #%d", r.Info().Number)
		}
		r.Info().Comments = comments
	}

	return records, nil
}

// FetchComments requests the comment list of a record once. The list is not
// paged.
func (c *Client) FetchComments(h *record.Header) ([]*record.Comment, error) {
	url := h.CommentsURL
	if url == "" {
		url = fmt.Sprintf("%s/issues/%d/comments", c.baseURL, h.Number)
	}

	r, err := c.http.R().Get(url)
	if err != nil {
		return nil, err
	}
	err = client.CheckResponse(r)
	if err != nil {
		return nil, err
	}

	return parseList(r.Body(), parseComment)
}
