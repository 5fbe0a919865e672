package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mr-tron/base58"
	"github.com/omarj21/solana-actions-backend/models"
	"go.uber.org/zap"
)

// Client talks to the marketplace REST API. It implements both Provider
// and TxBuilder.
type Client struct {
	baseUrl    string
	apiKey     string
	httpClient *retryablehttp.Client
	timeout    int
	debug      bool
}

var _ Provider = (*Client)(nil)
var _ TxBuilder = (*Client)(nil)

func NewClient(baseUrl string, apiKey string, timeout int, retryMax int, debug bool) (*Client, error) {
	if len(baseUrl) == 0 {
		return nil, errors.New("bad call missing argument baseUrl")
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = retryMax

	return &Client{baseUrl, apiKey, retryClient, timeout, debug}, nil
}

func (c *Client) FetchNftInfo(ctx context.Context, mint string) (*models.NftInfo, error) {
	// A mint that is not valid base58 can never resolve on chain.
	if _, err := base58.Decode(mint); err != nil {
		zap.L().With(zap.String("mint", mint)).Debug("Marketplace: mint is not valid base58")
		return nil, nil
	}

	var nft models.NftInfo
	found, err := c.get(ctx, "/api/v1/nfts/"+mint, &nft)
	if err != nil || !found {
		return nil, err
	}

	return &nft, nil
}

func (c *Client) FetchCollectionBySlug(ctx context.Context, slug string) (*models.Collection, error) {
	var collection models.Collection
	found, err := c.get(ctx, "/api/v1/collections/"+url.PathEscape(slug), &collection)
	if err != nil || !found {
		return nil, err
	}

	return &collection, nil
}

func (c *Client) BuildBidTransaction(ctx context.Context, params BidParams) (string, error) {
	return c.buildTx(ctx, "/api/v1/tx/bid", params)
}

func (c *Client) BuildBuyTransaction(ctx context.Context, params BuyParams) (string, error) {
	return c.buildTx(ctx, "/api/v1/tx/buy", params)
}

type txResponse struct {
	Transaction string `json:"transaction"`
}

func (c *Client) buildTx(ctx context.Context, path string, params interface{}) (string, error) {
	payloadBuffer := &bytes.Buffer{}
	if err := json.NewEncoder(payloadBuffer).Encode(params); err != nil {
		return "", err
	}

	zap.L().With(zap.String("path", path)).Debug("Marketplace: tx request")
	if c.debug {
		zap.L().With(zap.String("request", payloadBuffer.String())).Debug("Marketplace: tx request body")
	}

	req, err := retryablehttp.NewRequest("POST", c.baseUrl+path, payloadBuffer)
	if err != nil {
		return "", err
	}
	req = req.WithContext(ctx)
	req.Header.Add("Content-Type", "application/json;charset=utf-8")
	c.addHeaders(req)

	data, _, err := c.execute(req)
	if err != nil {
		return "", err
	}

	var txResp txResponse
	if err := json.Unmarshal(data, &txResp); err != nil {
		return "", err
	}

	return txResp.Transaction, nil
}

// get fetches a JSON document. The second return is false when the resource
// does not exist (404).
func (c *Client) get(ctx context.Context, path string, out interface{}) (bool, error) {
	req, err := retryablehttp.NewRequest("GET", c.baseUrl+path, nil)
	if err != nil {
		return false, err
	}
	req = req.WithContext(ctx)
	c.addHeaders(req)

	data, status, err := c.execute(req)
	if err != nil {
		if status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}

	return true, nil
}

func (c *Client) execute(req *retryablehttp.Request) ([]byte, int, error) {
	resp, err := c.doTimeoutRequest(time.NewTimer(time.Duration(c.timeout)*time.Second), req)
	if err != nil {
		zap.L().With(zap.Error(err)).Warn("Marketplace: request failure")
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	if c.debug {
		zap.L().With(zap.String("response", string(data))).Debug("Marketplace: response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("marketplace responded with status %d", resp.StatusCode)
	}

	return data, resp.StatusCode, nil
}

// doTimeoutRequest processes a HTTP request with timeout
func (c *Client) doTimeoutRequest(timer *time.Timer, req *retryablehttp.Request) (*http.Response, error) {
	type result struct {
		resp *http.Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := c.httpClient.Do(req)
		done <- result{resp, err}
	}()

	select {
	case r := <-done:
		return r.resp, r.err
	case <-timer.C:
		// Reap the abandoned response so its connection is not leaked.
		go func() {
			if r := <-done; r.resp != nil {
				_, _ = io.Copy(io.Discard, r.resp.Body)
				r.resp.Body.Close()
			}
		}()
		return nil, errors.New("timeout reading data from server")
	}
}

func (c *Client) addHeaders(req *retryablehttp.Request) {
	req.Header.Add("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Add("X-API-Key", c.apiKey)
	}
}
