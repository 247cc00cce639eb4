package pdns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/lite-lake/dnsops/internal/infrastructure/logger"
)

const apiKeyHeader = "X-API-Key"

// Config carries everything the client needs; it is threaded in through the
// constructor so tests can point the client at a fake server.
type Config struct {
	BaseURL  string
	APIKey   string
	ServerID string
	Timeout  time.Duration
}

// Client is a thin typed facade over the authority's REST endpoints. It
// performs no retries itself; callers decide retry policy per operation.
type Client struct {
	baseURL  string
	apiKey   string
	serverID string
	http     *http.Client
}

func NewClient(cfg Config) *Client {
	serverID := cfg.ServerID
	if serverID == "" {
		serverID = "localhost"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = timeout

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		serverID: serverID,
		http:     httpClient,
	}
}

// ListServers returns the server instances the API endpoint manages.
func (c *Client) ListServers(ctx context.Context) ([]Server, error) {
	var servers []Server
	if err := c.do(ctx, http.MethodGet, "/api/v1/servers", nil, &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

// GetServer returns the configured server instance.
func (c *Client) GetServer(ctx context.Context) (*Server, error) {
	var server Server
	path := fmt.Sprintf("/api/v1/servers/%s", url.PathEscape(c.serverID))
	if err := c.do(ctx, http.MethodGet, path, nil, &server); err != nil {
		return nil, err
	}
	return &server, nil
}

func (c *Client) ListZones(ctx context.Context) ([]ZoneInfo, error) {
	var zones []ZoneInfo
	if err := c.do(ctx, http.MethodGet, c.zonesPath(""), nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetZone fetches a zone with its nested RRSets.
func (c *Client) GetZone(ctx context.Context, name string) (*Zone, error) {
	var zone Zone
	if err := c.do(ctx, http.MethodGet, c.zonesPath(name), nil, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

func (c *Client) CreateZone(ctx context.Context, zone *Zone) (*Zone, error) {
	var created Zone
	if err := c.do(ctx, http.MethodPost, c.zonesPath(""), zone, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteZone(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, c.zonesPath(name), nil, nil)
}

// PatchRRSets submits one batch of RRSet-level operations. Each RRSet's
// ChangeType must be REPLACE or DELETE; the server applies the batch as one
// request but provides no transaction boundary across RRSets.
func (c *Client) PatchRRSets(ctx context.Context, zone string, rrsets []RRSet) error {
	return c.do(ctx, http.MethodPatch, c.zonesPath(zone), rrsetPatch{RRSets: rrsets}, nil)
}

func (c *Client) zonesPath(zone string) string {
	base := fmt.Sprintf("/api/v1/servers/%s/zones", url.PathEscape(c.serverID))
	if zone == "" {
		return base
	}
	return base + "/" + url.PathEscape(zone)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := fmt.Sprintf("%s %s", method, path)

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Message: fmt.Sprintf("encoding request: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{Op: op, Message: err.Error()}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("pdns request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: readAPIError(resp.Body)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Message: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}

func readAPIError(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return "no error body"
	}
	var apiErr apiError
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
		if len(apiErr.Errors) > 0 {
			return apiErr.Error + ": " + strings.Join(apiErr.Errors, ", ")
		}
		return apiErr.Error
	}
	return strings.TrimSpace(string(data))
}
