// Package inventory implements the InventorySource port against the testbed reference API.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/topo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

// Resource kinds reported to metrics.
const (
	ResourceVersion       = "version"
	ResourceSites         = "sites"
	ResourceClusters      = "clusters"
	ResourceBackbone      = "backbone"
	ResourceSiteEquipment = "site_equipment"
	ResourceClusterHosts  = "cluster_hosts"
)

// Client implements ports.InventorySource over HTTP.
// Requests are issued one at a time and paced by an optional token bucket.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    ports.Metrics
}

// NewClient creates a Client for cfg. A zero RequestsPerSecond disables pacing.
func NewClient(cfg domain.InventoryConfig, metrics ports.Metrics) *Client {
	return newClientWithHTTP(cfg, metrics, &http.Client{Timeout: cfg.Timeout})
}

func newClientWithHTTP(cfg domain.InventoryConfig, metrics ports.Metrics, httpClient *http.Client) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: httpClient,
		metrics:    metrics,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

type versionResponse struct {
	Version string `json:"version"`
}

type uidItem struct {
	UID string `json:"uid"`
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

// Version returns the current version of the inventory data.
func (c *Client) Version(ctx context.Context) (string, error) {
	var resp versionResponse
	if err := c.get(ctx, ResourceVersion, &resp); err != nil {
		return "", err
	}
	if resp.Version == "" {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrInventorySource, domain.ErrInventoryDecode), "response has no version"),
			"url", c.baseURL+"/")
	}
	return resp.Version, nil
}

// Sites lists the site uids.
func (c *Client) Sites(ctx context.Context) ([]string, error) {
	return c.listUIDs(ctx, ResourceSites, "sites")
}

// Clusters lists the cluster uids of a site.
func (c *Client) Clusters(ctx context.Context, site string) ([]string, error) {
	uids, err := c.listUIDs(ctx, ResourceClusters, "sites", site, "clusters")
	if err != nil {
		return nil, zerr.With(err, "site", site)
	}
	return uids, nil
}

// Backbone returns the inter-site network equipment.
func (c *Client) Backbone(ctx context.Context) ([]domain.Equipment, error) {
	var resp itemsResponse[domain.Equipment]
	if err := c.get(ctx, ResourceBackbone, &resp, "network_equipments"); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// SiteEquipment returns the network equipment of a site.
func (c *Client) SiteEquipment(ctx context.Context, site string) ([]domain.Equipment, error) {
	var resp itemsResponse[domain.Equipment]
	if err := c.get(ctx, ResourceSiteEquipment, &resp, "sites", site, "network_equipments"); err != nil {
		return nil, zerr.With(err, "site", site)
	}
	return resp.Items, nil
}

// ClusterHosts returns the hosts of a cluster.
func (c *Client) ClusterHosts(ctx context.Context, site, cluster string) ([]domain.Host, error) {
	var resp itemsResponse[domain.Host]
	if err := c.get(ctx, ResourceClusterHosts, &resp, "sites", site, "clusters", cluster, "nodes"); err != nil {
		return nil, zerr.With(zerr.With(err, "site", site), "cluster", cluster)
	}
	return resp.Items, nil
}

func (c *Client) listUIDs(ctx context.Context, resource string, segments ...string) ([]string, error) {
	var resp itemsResponse[uidItem]
	if err := c.get(ctx, resource, &resp, segments...); err != nil {
		return nil, err
	}
	uids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		uids = append(uids, item.UID)
	}
	return uids, nil
}

// resourceURL joins escaped path segments onto the base URL.
func (c *Client) resourceURL(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// get issues one GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, resource string, out any, segments ...string) error {
	target := c.resourceURL(segments...)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return zerr.With(errors.Join(domain.ErrInventorySource, err), "url", target)
		}
	}
	if c.metrics != nil {
		c.metrics.InventoryRequest(resource)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrInventorySource, err), "url", target)
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrInventorySource, err), "url", target)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrInventorySource, "unexpected status"), "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrInventorySource, err), "url", target)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return zerr.With(errors.Join(domain.ErrInventorySource, domain.ErrInventoryDecode, err), "url", target)
	}
	return nil
}
