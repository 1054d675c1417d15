package record

import "time"

type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

type Kind string

const (
	KindIssue             Kind = "issue"
	KindOpenPullRequest   Kind = "pull"
	KindClosedPullRequest Kind = "closed-pull"
)

type Comment struct {
	Body    string
	User    string
	Created time.Time
}

// Header holds the fields shared by every record variant.
type Header struct {
	Number   int64
	Title    string
	Body     string
	State    State
	Comments []*Comment

	// CommentsURL is where the source lists the comments of this record.
	CommentsURL string
}

// Record is one of *Issue, *OpenPullRequest or *ClosedPullRequest.
type Record interface {
	Kind() Kind
	Info() *Header
}

type Issue struct {
	Header
	Labels    []string
	Assignees []string
}

func (i *Issue) Kind() Kind { return KindIssue }
func (i *Issue) Info() *Header { return &i.Header }

type OpenPullRequest struct {
	Header
	Head  string
	Base  string
	Draft bool
}

func (pr *OpenPullRequest) Kind() Kind { return KindOpenPullRequest }
func (pr *OpenPullRequest) Info() *Header { return &pr.Header }

// ClosedPullRequest cannot be recreated on the target and is written as a
// closed placeholder issue.
type ClosedPullRequest struct {
	Header
	Head string
	Base string
}

func (pr *ClosedPullRequest) Kind() Kind { return KindClosedPullRequest }
func (pr *ClosedPullRequest) Info() *Header { return &pr.Header }
