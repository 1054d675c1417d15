package record

import (
	"gb2gh/internal/errcodes"

	"github.com/pkg/errors"
)

// Summary counts what has been written to the target. After a failed
// WriteAll it describes the partially migrated state.
type Summary struct {
	Records      int
	Issues       int
	PullRequests int
	Placeholders int
	Comments     int
	Closed       int
}

type Progress struct {
	Done    int
	Total   int
	Record  Record
	Created *Created
}

type MigrateService struct {
	target  Target
	options *WriteOptions
	// OnWritten is called after every fully written record.
	OnWritten func(p *Progress)
}

func NewMigrateService(t Target, o *WriteOptions) *MigrateService {
	return &MigrateService{
		target:  t,
		options: o,
	}
}

// WriteAll writes records one at a time in the given order and stops at the
// first failing request. Nothing already written is rolled back.
func (s *MigrateService) WriteAll(records []Record) (*Summary, error) {
	summary := &Summary{}
	for i, r := range records {
		created, err := s.write(r, summary)
		if err != nil {
			return summary, err
		}
		summary.Records++

		if s.OnWritten != nil {
			s.OnWritten(&Progress{
				Done:    i + 1,
				Total:   len(records),
				Record:  r,
				Created: created,
			})
		}
	}

	return summary, nil
}

func (s *MigrateService) write(r Record, summary *Summary) (*Created, error) {
	switch v := r.(type) {
	case *ClosedPullRequest:
		return s.writePlaceholder(v, summary)
	case *OpenPullRequest:
		return s.writePullRequest(v, summary)
	case *Issue:
		return s.writeIssue(v, summary)
	}

	return nil, errors.Wrapf(errcodes.ErrUnknownRecordKind, "%T", r)
}

func (s *MigrateService) writePlaceholder(pr *ClosedPullRequest, summary *Summary) (*Created, error) {
	created, err := s.target.CreateIssue(&CreateIssueOptions{
		Title:     PlaceholderTitlePrefix + pr.Title,
		Body:      PlaceholderBody,
		Labels:    []string{PlaceholderLabel},
		Assignees: []string{s.options.DefaultOwner},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create placeholder for pull request #%d", pr.Number)
	}
	summary.Placeholders++

	err = s.close(created, summary)
	if err != nil {
		return nil, errors.Wrapf(err, "could not close placeholder for pull request #%d", pr.Number)
	}

	return created, nil
}

func (s *MigrateService) writePullRequest(pr *OpenPullRequest, summary *Summary) (*Created, error) {
	created, err := s.target.CreatePullRequest(&CreatePullRequestOptions{
		Title: pr.Title,
		Body:  pr.Body,
		Head:  pr.Head,
		Base:  s.options.translateBase(pr.Base),
		Draft: pr.Draft,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create pull request #%d", pr.Number)
	}
	summary.PullRequests++

	err = s.replayComments(created, pr.Comments, summary)
	if err != nil {
		return nil, errors.Wrapf(err, "could not copy comments of pull request #%d", pr.Number)
	}

	return created, nil
}

func (s *MigrateService) writeIssue(issue *Issue, summary *Summary) (*Created, error) {
	labels := make([]string, 0, len(issue.Labels))
	labels = append(labels, issue.Labels...)

	created, err := s.target.CreateIssue(&CreateIssueOptions{
		Title:     issue.Title,
		Body:      issue.Body,
		Labels:    labels,
		Assignees: []string{s.options.DefaultOwner},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create issue #%d", issue.Number)
	}
	summary.Issues++

	err = s.replayComments(created, issue.Comments, summary)
	if err != nil {
		return nil, errors.Wrapf(err, "could not copy comments of issue #%d", issue.Number)
	}

	if issue.State == StateClosed {
		err = s.close(created, summary)
		if err != nil {
			return nil, errors.Wrapf(err, "could not close issue #%d", issue.Number)
		}
	}

	return created, nil
}

func (s *MigrateService) replayComments(created *Created, comments []*Comment, summary *Summary) error {
	for _, c := range comments {
		err := s.target.CreateComment(&CreateCommentOptions{
			Number: created.Number,
			Body:   c.Body,
		})
		if err != nil {
			return err
		}
		summary.Comments++
	}

	return nil
}

func (s *MigrateService) close(created *Created, summary *Summary) error {
	err := s.target.Close(&CloseOptions{Number: created.Number})
	if err != nil {
		return err
	}
	summary.Closed++

	return nil
}
