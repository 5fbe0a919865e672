package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresBaseUrl(t *testing.T) {
	_, err := NewClient("", "", 5, 0, false)
	assert.Error(t, err)
}

func TestFetchNftInfo(t *testing.T) {
	var gotPath, gotApiKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotApiKey = r.Header.Get("X-API-Key")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"mint":        "M1",
			"name":        "Foo",
			"imageUri":    "https://img.example/foo.png",
			"slugDisplay": "foos",
			"listing":     map[string]string{"price": "1000000000", "seller": "SellerAddr"},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "secret", 5, 0, false)
	require.NoError(t, err)

	nft, err := client.FetchNftInfo(context.Background(), "M1")
	require.NoError(t, err)
	require.NotNil(t, nft)

	assert.Equal(t, "/api/v1/nfts/M1", gotPath)
	assert.Equal(t, "secret", gotApiKey)
	assert.Equal(t, "Foo", nft.Name)
	require.NotNil(t, nft.Listing)
	assert.Equal(t, "1000000000", nft.Listing.Price)
	assert.Equal(t, "SellerAddr", nft.Listing.Seller)
}

func TestFetchNftInfo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "", 5, 0, false)
	require.NoError(t, err)

	nft, err := client.FetchNftInfo(context.Background(), "M1")
	require.NoError(t, err)
	assert.Nil(t, nft)
}

func TestFetchNftInfo_InvalidBase58(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "", 5, 0, false)
	require.NoError(t, err)

	// '0' is not in the base58 alphabet.
	nft, err := client.FetchNftInfo(context.Background(), "0invalid")
	require.NoError(t, err)
	assert.Nil(t, nft)
	assert.Zero(t, requests, "no request should be made for an invalid mint")
}

func TestFetchNftInfo_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "", 5, 0, false)
	require.NoError(t, err)

	_, err = client.FetchNftInfo(context.Background(), "M1")
	assert.Error(t, err)
}

func TestFetchCollectionBySlug(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"slugDisplay":       "foos",
			"description":       "D",
			"sellRoyaltyFeeBPS": 500,
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "", 5, 0, false)
	require.NoError(t, err)

	collection, err := client.FetchCollectionBySlug(context.Background(), "foos")
	require.NoError(t, err)
	require.NotNil(t, collection)

	assert.Equal(t, "/api/v1/collections/foos", gotPath)
	assert.Equal(t, "D", collection.Description)
	assert.Equal(t, 500, collection.SellRoyaltyFeeBPS)
}

func TestBuildBidTransaction(t *testing.T) {
	var gotParams BidParams
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/tx/bid", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotParams))
		_ = json.NewEncoder(w).Encode(map[string]string{"transaction": "txBase64"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "", 5, 0, false)
	require.NoError(t, err)

	tx, err := client.BuildBidTransaction(context.Background(), BidParams{
		Mint:          "M1",
		Buyer:         "Acc1",
		PriceLamports: 1_350_000_000,
		RoyaltyBps:    500,
	})
	require.NoError(t, err)
	assert.Equal(t, "txBase64", tx)

	assert.Equal(t, "M1", gotParams.Mint)
	assert.Equal(t, "Acc1", gotParams.Buyer)
	assert.Equal(t, int64(1_350_000_000), gotParams.PriceLamports)
	assert.Equal(t, 500, gotParams.RoyaltyBps)
}

func TestBuildBuyTransaction_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/tx/buy", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "", 5, 0, false)
	require.NoError(t, err)

	tx, err := client.BuildBuyTransaction(context.Background(), BuyParams{
		Mint:          "M1",
		Buyer:         "Acc1",
		Seller:        "SellerAddr",
		PriceLamports: "1000000000",
		RoyaltyBps:    500,
	})
	require.NoError(t, err)
	assert.Empty(t, tx, "an absent transaction is the builder's decline signal")
}

func TestFetchNftInfo_Timeout(t *testing.T) {
	handlerDone := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_ = json.NewEncoder(w).Encode(map[string]string{"mint": "M1"})
		close(handlerDone)
	}))
	defer server.Close()
	defer close(release)

	client, err := NewClient(server.URL, "", 1, 0, false)
	require.NoError(t, err)

	_, err = client.FetchNftInfo(context.Background(), "M1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")

	select {
	case <-handlerDone:
		t.Fatal("handler should still be blocked when the timeout fires")
	default:
	}
}

func TestBuildBuyTransaction_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "", 5, 0, false)
	require.NoError(t, err)

	_, err = client.BuildBuyTransaction(context.Background(), BuyParams{Mint: "M1"})
	assert.Error(t, err)
}
