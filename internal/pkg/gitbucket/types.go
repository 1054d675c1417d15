package gitbucket

import (
	"gb2gh/internal/domain/record"
	"gb2gh/internal/errcodes"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// parseRecord classifies a listing item. Only pull requests carry a merged
// field, whatever its value.
func parseRecord(key, value gjson.Result) (record.Record, error) {
	number := value.Get("number")
	if number.Type != gjson.Number {
		return nil, errors.Wrapf(errcodes.ErrUnexpectedResponse, "item %s has no number", key.String())
	}

	header := record.Header{
		Number:      number.Int(),
		Title:       value.Get("title").String(),
		Body:        value.Get("body").String(),
		State:       record.State(value.Get("state").String()),
		CommentsURL: value.Get("comments_url").String(),
	}

	if !value.Get("merged").Exists() {
		return &record.Issue{
			Header:    header,
			Labels:    names(value.Get("labels"), "name"),
			Assignees: names(value.Get("assignees"), "login"),
		}, nil
	}

	if header.State == record.StateClosed {
		return &record.ClosedPullRequest{
			Header: header,
			Head:   value.Get("head.ref").String(),
			Base:   value.Get("base.ref").String(),
		}, nil
	}

	return &record.OpenPullRequest{
		Header: header,
		Head:   value.Get("head.ref").String(),
		Base:   value.Get("base.ref").String(),
		Draft:  value.Get("draft").Bool(),
	}, nil
}

func parseComment(key, value gjson.Result) (*record.Comment, error) {
	if !value.IsObject() {
		return nil, errors.Wrapf(errcodes.ErrUnexpectedResponse, "comment %s is not an object", key.String())
	}

	return &record.Comment{
		Body:    value.Get("body").String(),
		User:    value.Get("user.login").String(),
		Created: value.Get("created_at").Time(),
	}, nil
}

func names(list gjson.Result, field string) []string {
	result := []string{}
	list.ForEach(func(_, value gjson.Result) bool {
		result = append(result, value.Get(field).String())
		return true
	})

	return result
}
