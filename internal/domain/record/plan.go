package record

import (
	"gb2gh/internal/errcodes"

	"github.com/pkg/errors"
)

const (
	PlaceholderTitlePrefix = "[PULL] "
	PlaceholderBody        = "This is a dummy issue instead of a closed pull request."
	PlaceholderLabel       = "wontfix"
)

type WriteOptions struct {
	// SourceMaster is the master branch name used on the source. Open pull
	// requests based on it are rebased onto TargetMaster.
	SourceMaster string
	TargetMaster string
	// DefaultOwner is assigned to every created issue; users are not mapped
	// between the two services.
	DefaultOwner string
}

func (o *WriteOptions) translateBase(base string) string {
	if base == o.SourceMaster {
		return o.TargetMaster
	}

	return base
}

type ActionKind string

const (
	ActionCreateIssue       ActionKind = "create-issue"
	ActionCreatePullRequest ActionKind = "create-pull"
	ActionCreatePlaceholder ActionKind = "create-placeholder"
)

// Action describes the requests written for a single record.
type Action struct {
	Number   int64
	Kind     ActionKind
	Title    string
	Base     string
	Comments int
	Close    bool
}

func PlanRecord(r Record, o *WriteOptions) (*Action, error) {
	switch v := r.(type) {
	case *ClosedPullRequest:
		return &Action{
			Number: v.Number,
			Kind:   ActionCreatePlaceholder,
			Title:  PlaceholderTitlePrefix + v.Title,
			Close:  true,
		}, nil
	case *OpenPullRequest:
		return &Action{
			Number:   v.Number,
			Kind:     ActionCreatePullRequest,
			Title:    v.Title,
			Base:     o.translateBase(v.Base),
			Comments: len(v.Comments),
		}, nil
	case *Issue:
		return &Action{
			Number:   v.Number,
			Kind:     ActionCreateIssue,
			Title:    v.Title,
			Comments: len(v.Comments),
			Close:    v.State == StateClosed,
		}, nil
	}

	return nil, errors.Wrapf(errcodes.ErrUnknownRecordKind, "%T", r)
}

// Plan returns the actions WriteAll would perform, in order, without sending
// any request.
func Plan(records []Record, o *WriteOptions) ([]*Action, error) {
	actions := make([]*Action, 0, len(records))
	for _, r := range records {
		a, err := PlanRecord(r, o)
		if err != nil {
			return nil, err
		}

		actions = append(actions, a)
	}

	return actions, nil
}
