package webhook

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	HeaderEventType = "X-Event-Type"
	HeaderSignature = "X-Signature"
)

// Client posts webhook bodies with fasthttp. Each call blocks until the receiver
// answers or the timeout expires.
type Client struct {
	http    *fasthttp.Client
	timeout time.Duration
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http: &fasthttp.Client{
			Name:                "fiadopay-webhooks",
			MaxIdleConnDuration: time.Minute,
		},
		timeout: timeout,
	}
}

// Post sends body as JSON to url and returns the response status code. Redirects are
// not followed.
func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.SetBody(body)

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return 0, err
	}
	return resp.StatusCode(), nil
}
