package api

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/ShopList/client/internal/client"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

// caller runs one timed API call through a client.
type caller struct {
	client   *client.Client
	metrics  *monitoring.Metrics
	resource string
}

func (c caller) do(ctx context.Context, operation string, send func(req *resty.Request) (*resty.Response, error)) (resp *resty.Response, err error) {
	timer := monitoring.NewTimer(c.metrics, c.resource, operation)
	defer func() { timer.Stop(err) }()

	req, err := c.client.Request(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", c.resource, operation, err)
	}

	resp, err = c.client.Execute(func() (*resty.Response, error) {
		return send(req)
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", c.resource, operation, err)
	}
	if !resp.IsSuccess() {
		return resp, newStatusError(resp)
	}
	return resp, nil
}

// decode unmarshals a JSON response body into out.
func decode(resp *resty.Response, out any) error {
	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}
	return nil
}
