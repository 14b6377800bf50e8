// Package api is the transport layer against the taller mecánico REST API.
// It plays the role the centralized axios instance played in the web client:
// base URL, JSON headers, bearer credential, and uniform error decoding.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tallerctl/internal/apierror"
	"tallerctl/internal/dto"
	"tallerctl/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Client talks to the remote store. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ObtenerSnapshot fetches the combined payload used to denormalize the grid.
func (c *Client) ObtenerSnapshot(ctx context.Context) (*dto.SnapshotResponse, error) {
	var snap dto.SnapshotResponse
	if err := c.do(ctx, http.MethodGet, "/presupuestos/data", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListarPresupuestos fetches the plain (not denormalized) list endpoint.
func (c *Client) ListarPresupuestos(ctx context.Context) ([]model.Presupuesto, error) {
	var out []model.Presupuesto
	if err := c.do(ctx, http.MethodGet, "/presupuestos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CrearPresupuesto(ctx context.Context, req dto.CrearPresupuestoRequest) (*model.Presupuesto, error) {
	var out model.Presupuesto
	if err := c.do(ctx, http.MethodPost, "/presupuestos", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarPresupuesto(ctx context.Context, id int, req dto.ActualizarPresupuestoRequest) (*model.Presupuesto, error) {
	var out model.Presupuesto
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/presupuestos/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EliminarPresupuesto(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/presupuestos/%d", id), nil, nil)
}

// do performs one request: marshal body, set headers, decode response into
// out (when non-nil) or the error envelope on non-2xx. No retries.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal payload: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("api request failed")
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// decodeError maps a non-2xx response to *apierror.APIError, keeping the
// server's message when the body carries the envelope.
func decodeError(resp *http.Response) error {
	apiErr := &apierror.APIError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = apierror.MensajeGenerico
	}
	return apiErr
}
