// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed talks to the NCBI E-utilities API: esearch.fcgi turns a
// free-text query into PubMed IDs and efetch.fcgi returns the raw XML record
// for one ID.
//
// API documentation: https://www.ncbi.nlm.nih.gov/books/NBK25499/
package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

const (
	esearchPath = "/esearch.fcgi"
	efetchPath  = "/efetch.fcgi"
	database    = "pubmed"
)

// Client implements the search gateway and the record fetcher.
type Client struct {
	HTTP *http.Client
	Cfg  types.PubMedConfig

	// UserAgent is sent with every request.
	UserAgent string
}

// New returns a Client with an http.Client built from httpCfg.
func New(cfg types.PubMedConfig, httpCfg types.HTTPConfig) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: httpCfg.Timeout},
		Cfg:       cfg,
		UserAgent: httpCfg.UserAgent,
	}
}

// esearchResult is the subset of the esearch response we read.
type esearchResult struct {
	XMLName xml.Name `xml:"eSearchResult"`
	Count   int      `xml:"Count"`
	IDs     []string `xml:"IdList>Id"`
	Error   string   `xml:"ERROR"`
}

// Search returns up to maxResults PubMed IDs for query, in the order
// esearch ranks them. maxResults <= 0 uses the configured cap; a value
// above types.MaxResultsLimit is an error, matching config validation.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}
	if maxResults <= 0 {
		maxResults = c.Cfg.MaxResults
	}
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}
	if maxResults > types.MaxResultsLimit {
		return nil, fmt.Errorf("max results %d exceeds the E-utilities limit of %d", maxResults, types.MaxResultsLimit)
	}

	params := c.params()
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(maxResults))

	body, err := httputil.Get(ctx, c.HTTP, c.endpoint(esearchPath, params), c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("PubMed search: %w", err)
	}

	var res esearchResult
	if err := xml.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("parsing PubMed search response: %w", err)
	}
	if res.Error != "" {
		return nil, fmt.Errorf("PubMed search: %s", res.Error)
	}

	ids := make([]string, 0, len(res.IDs))
	for _, id := range res.IDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Fetch returns the raw efetch XML document for one PubMed ID.
func (c *Client) Fetch(ctx context.Context, pmid string) ([]byte, error) {
	pmid = strings.TrimSpace(pmid)
	if pmid == "" {
		return nil, fmt.Errorf("empty PubMed ID")
	}

	params := c.params()
	params.Set("id", pmid)

	body, err := httputil.Get(ctx, c.HTTP, c.endpoint(efetchPath, params), c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching PubMed ID %s: %w", pmid, err)
	}
	return body, nil
}

// params returns the query parameters common to every request.
func (c *Client) params() url.Values {
	v := url.Values{}
	v.Set("db", database)
	v.Set("retmode", "xml")
	if c.Cfg.APIKey != "" {
		v.Set("api_key", c.Cfg.APIKey)
	}
	if c.Cfg.Email != "" {
		v.Set("email", c.Cfg.Email)
	}
	if c.Cfg.Tool != "" {
		v.Set("tool", c.Cfg.Tool)
	}
	return v
}

func (c *Client) endpoint(path string, params url.Values) string {
	base := c.Cfg.BaseURL
	if base == "" {
		base = types.DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + path + "?" + params.Encode()
}
