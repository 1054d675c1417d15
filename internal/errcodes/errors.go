package errcodes

import "errors"

var (
	ErrMissingSourceURL      = errors.New("source url is missing")
	ErrMissingSourceToken    = errors.New("source token is missing")
	ErrMissingTargetURL      = errors.New("target url is missing")
	ErrMissingTargetToken    = errors.New("target token is missing")
	ErrMissingOwner          = errors.New("default owner is missing")
	ErrMissingMasterBranch   = errors.New("master branch name is missing")
	ErrMissingBranch         = errors.New("pull request branch is missing")
	ErrRequestFailed         = errors.New("request failed")
	ErrUnexpectedResponse    = errors.New("unexpected response body")
	ErrMissingNumber         = errors.New("response is missing a number")
	ErrUnknownRecordKind     = errors.New("unknown record kind")
	ErrUnknownStateFilter    = errors.New("state must be one of (open, closed, all)")
	ErrMigrationNotConfirmed = errors.New("migration was not confirmed")
)
