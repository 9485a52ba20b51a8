package labclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"numlab/internal/domain"
	"numlab/internal/labapi"
)

type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the labd at base. A nil client selects
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

func (c *HTTP) Change(
	ctx context.Context,
	amount int,
	denoms domain.Denominations,
	strategy domain.ChangeStrategy,
) (domain.ChangeComparison, error) {
	var out domain.ChangeComparison
	err := c.post(ctx, "/v1/change", labapi.ChangeRequest{
		Amount:        amount,
		Denominations: denoms,
		Strategy:      strategy,
	}, &out)
	return out, err
}

func (c *HTTP) Integrate(ctx context.Context, req domain.IntegrationRequest) (domain.Experiment, error) {
	var out domain.Experiment
	err := c.post(ctx, "/v1/integrate", labapi.IntegrateRequest{
		Function: req.Function,
		A:        req.Interval.A,
		B:        req.Interval.B,
		Samples:  req.Samples,
		Trials:   req.Trials,
		Seed:     req.Seed,
	}, &out)
	return out, err
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		var e labapi.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("lab post %s: %s: %s", path, resp.Status, e.Error)
		}
		return fmt.Errorf("lab post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

var _ domain.LabClient = (*HTTP)(nil)
