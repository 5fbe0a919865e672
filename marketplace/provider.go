package marketplace

import (
	"context"

	"github.com/omarj21/solana-actions-backend/models"
)

// Provider resolves NFT and collection state from the marketplace.
// A (nil, nil) return means the identifier did not resolve.
type Provider interface {
	FetchNftInfo(ctx context.Context, mint string) (*models.NftInfo, error)
	FetchCollectionBySlug(ctx context.Context, slug string) (*models.Collection, error)
}

// BidParams are the normalized inputs for constructing a bid transaction.
type BidParams struct {
	Mint          string `json:"mint"`
	Buyer         string `json:"buyer"`
	PriceLamports int64  `json:"priceLamports"`
	RoyaltyBps    int    `json:"royaltyBps"`
}

// BuyParams are the normalized inputs for constructing a buy transaction.
// PriceLamports carries the listing price exactly as the marketplace
// reported it.
type BuyParams struct {
	Mint          string `json:"mint"`
	Buyer         string `json:"buyer"`
	Seller        string `json:"seller"`
	PriceLamports string `json:"priceLamports"`
	RoyaltyBps    int    `json:"royaltyBps"`
}

// TxBuilder constructs unsigned transactions for marketplace operations.
// An empty transaction string with a nil error means the builder declined
// to produce one.
type TxBuilder interface {
	BuildBidTransaction(ctx context.Context, params BidParams) (string, error)
	BuildBuyTransaction(ctx context.Context, params BuyParams) (string, error)
}
