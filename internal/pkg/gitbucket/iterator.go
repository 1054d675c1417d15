package gitbucket

import (
	"fmt"

	"gb2gh/internal/domain/record"
	"gb2gh/internal/errcodes"
	"gb2gh/internal/pkg/client"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// pageLimit bounds the page index of a listing. Pages 1 to pageLimit-1 are
// requested at most.
var pageLimit = 10000

// pageIterator walks a page numbered listing of the source API until a page
// comes back empty.
type pageIterator[T any] struct {
	Client     *Client
	RequestURL string
	State      record.State
	Parse      func(key, value gjson.Result) (T, error)
	page       int
	hasNext    bool
}

type newPageIteratorOptions[T any] struct {
	// Client is the source client
	Client *Client
	// RequestURL is the listing URL without query parameters
	RequestURL string
	// State is sent as the state query parameter
	State record.State
	// Parse is the function to parse one item of a page
	Parse func(key, value gjson.Result) (T, error)
}

func newPageIterator[T any](options *newPageIteratorOptions[T]) *pageIterator[T] {
	return &pageIterator[T]{
		Client:     options.Client,
		RequestURL: options.RequestURL,
		State:      options.State,
		Parse:      options.Parse,
		page:       0,
		hasNext:    true,
	}
}

func (i *pageIterator[T]) HasNext() bool {
	return i.hasNext
}

// Reset rewinds the iterator to the first page.
func (i *pageIterator[T]) Reset() {
	i.page = 0
	i.hasNext = true
}

// GetAll returns the values of all remaining pages
func (i *pageIterator[T]) GetAll() ([]T, error) {
	result := []T{}
	for i.HasNext() {
		list, err := i.Next()
		if err != nil {
			return nil, err
		}

		result = append(result, list...)
	}

	return result, nil
}

func (i *pageIterator[T]) Next() ([]T, error) {
	if !i.hasNext {
		return nil, nil
	}

	if i.page+1 >= pageLimit {
		log.WithFields(log.Fields{
			"url":   i.RequestURL,
			"state": i.State,
			"page":  i.page,
		}).Warn("page limit reached, listing stopped")
		i.hasNext = false
		return nil, nil
	}
	i.page++

	r, err := i.Client.http.R().
		SetQueryParams(map[string]string{
			"state": string(i.State),
			"page":  fmt.Sprint(i.page),
		}).
		Get(i.RequestURL)
	if err != nil {
		return nil, err
	}
	err = client.CheckResponse(r)
	if err != nil {
		return nil, err
	}

	list, err := parseList(r.Body(), i.Parse)
	if err != nil {
		return nil, errors.Wrapf(err, "%s?state=%s&page=%d", i.RequestURL, i.State, i.page)
	}
	if len(list) == 0 {
		i.hasNext = false
	}

	return list, nil
}

func parseList[T any](body []byte, parse func(key, value gjson.Result) (T, error)) ([]T, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.Wrap(errcodes.ErrUnexpectedResponse, "invalid json")
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, errors.Wrap(errcodes.ErrUnexpectedResponse, "expected a list")
	}

	list := []T{}
	var parseErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		obj, err := parse(key, value)
		if err != nil {
			parseErr = err
			return false
		}

		list = append(list, obj)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return list, nil
}
