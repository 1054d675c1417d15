package client

import (
	"fmt"

	"gb2gh/internal/errcodes"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// AuthScheme is accepted by both GitBucket and GitHub.
const AuthScheme = "token"

type Options struct {
	Token string
}

// NewRESTClient returns the authenticated session used for every request
// against one service.
func NewRESTClient(o *Options) *resty.Client {
	return resty.New().
		SetHeader("Authorization", fmt.Sprintf("%s %s", AuthScheme, o.Token)).
		SetHeader("Accept", "application/json").
		OnAfterResponse(traceResponse)
}

func traceResponse(c *resty.Client, r *resty.Response) error {
	log.WithFields(log.Fields{
		"method":   r.Request.Method,
		"url":      r.Request.URL,
		"status":   r.StatusCode(),
		"duration": r.Time(),
	}).Debug("request done")

	return nil
}

// CheckResponse turns a non-2xx response into an ErrRequestFailed error.
func CheckResponse(r *resty.Response) error {
	if r.IsSuccess() {
		return nil
	}

	return errors.Wrapf(
		errcodes.ErrRequestFailed,
		"%s %s: %s: %s",
		r.Request.Method,
		r.Request.URL,
		r.Status(),
		string(r.Body()),
	)
}
