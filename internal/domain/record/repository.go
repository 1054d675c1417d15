package record

type Source interface {
	FetchAll() ([]Record, error)
}

type Target interface {
	CreateIssue(*CreateIssueOptions) (*Created, error)
	CreatePullRequest(*CreatePullRequestOptions) (*Created, error)
	CreateComment(*CreateCommentOptions) error
	Close(*CloseOptions) error
}

// Created is the item the target assigned a number to.
type Created struct {
	Number int64
	URL    string
}

type CreateIssueOptions struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}

type CreatePullRequestOptions struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

type CreateCommentOptions struct {
	Number int64
	Body   string
}

type CloseOptions struct {
	Number int64
}
