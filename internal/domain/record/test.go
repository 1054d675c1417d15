package record

import "fmt"

type MockSource struct {
	Records    []Record
	ErrorValue error
}

func (m *MockSource) FetchAll() ([]Record, error) {
	return m.Records, m.ErrorValue
}

// MockTarget records every call as a short string and hands out numbers
// starting at 1. FailOn makes the call with that description fail.
type MockTarget struct {
	Calls      []string
	FailOn     string
	ErrorValue error
	next       int64
}

func (m *MockTarget) call(c string) error {
	m.Calls = append(m.Calls, c)
	if m.FailOn != "" && m.FailOn == c {
		return m.ErrorValue
	}

	return nil
}

func (m *MockTarget) created() *Created {
	m.next++
	return &Created{Number: m.next}
}

func (m *MockTarget) CreateIssue(o *CreateIssueOptions) (*Created, error) {
	err := m.call(fmt.Sprintf("create-issue %s %v %v", o.Title, o.Labels, o.Assignees))
	if err != nil {
		return nil, err
	}

	return m.created(), nil
}

func (m *MockTarget) CreatePullRequest(o *CreatePullRequestOptions) (*Created, error) {
	err := m.call(fmt.Sprintf("create-pull %s %s->%s draft=%v", o.Title, o.Head, o.Base, o.Draft))
	if err != nil {
		return nil, err
	}

	return m.created(), nil
}

func (m *MockTarget) CreateComment(o *CreateCommentOptions) error {
	return m.call(fmt.Sprintf("comment %d %s", o.Number, o.Body))
}

func (m *MockTarget) Close(o *CloseOptions) error {
	return m.call(fmt.Sprintf("close %d", o.Number))
}
