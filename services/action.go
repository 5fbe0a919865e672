package services

import (
	"context"
	"fmt"

	"github.com/omarj21/solana-actions-backend/marketplace"
	"github.com/omarj21/solana-actions-backend/models"
)

// ActionService resolves marketplace state for an NFT and shapes the
// actions-protocol responses around it.
type ActionService struct {
	provider marketplace.Provider
	builder  marketplace.TxBuilder
	label    string
	basePath string
}

// NewActionService creates a new ActionService instance. label is the fixed
// product label on discovery responses; basePath prefixes action hrefs.
func NewActionService(provider marketplace.Provider, builder marketplace.TxBuilder, label string, basePath string) *ActionService {
	return &ActionService{provider, builder, label, basePath}
}

// Discovery builds the metadata + action-list response for a bare mint.
// "Buy Now" leads the list when the NFT is listed; "Make Offer" is always
// offered.
func (s *ActionService) Discovery(ctx context.Context, mint string) (*models.GetResponse, error) {
	nft, collection, err := s.resolve(ctx, mint)
	if err != nil {
		return nil, err
	}

	actions := make([]models.Action, 0, 2)
	if nft.Listing != nil {
		display, err := FormatSol(nft.Listing.Price)
		if err != nil {
			return nil, fmt.Errorf("format listing price for %s: %w", mint, err)
		}
		actions = append(actions, models.Action{
			Label: fmt.Sprintf("Buy Now (%s SOL)", display),
			Href:  fmt.Sprintf("%s/%s", s.basePath, mint),
		})
	}
	actions = append(actions, models.Action{
		Label: "Make Offer",
		Href:  fmt.Sprintf("%s/%s/{amount}", s.basePath, mint),
		Parameters: []models.ActionParameter{
			{Name: "amount", Label: "Enter a custom SOL amount"},
		},
	})

	return &models.GetResponse{
		Icon:        nft.ImageUri,
		Label:       s.label,
		Title:       nft.Name,
		Description: collection.Description,
		Links:       &models.ActionLinks{Actions: actions},
	}, nil
}

// AmountMetadata re-skins the discovery metadata once an amount has been
// chosen. No further actions are offered.
func (s *ActionService) AmountMetadata(ctx context.Context, mint string, amount string) (*models.GetResponse, error) {
	nft, collection, err := s.resolve(ctx, mint)
	if err != nil {
		return nil, err
	}

	return &models.GetResponse{
		Icon:        nft.ImageUri,
		Label:       amount + " SOL",
		Title:       nft.Name,
		Description: collection.Description,
	}, nil
}

// CreateBidTransaction builds an unsigned bid transaction for the given
// amount. Bidding requires a listing for royalty and seller terms even
// though the bid need not match the list price.
func (s *ActionService) CreateBidTransaction(ctx context.Context, mint string, amount string, account string) (string, error) {
	_, collection, err := s.resolveListed(ctx, mint)
	if err != nil {
		return "", err
	}

	lamports, err := SolToLamports(amount)
	if err != nil {
		return "", err
	}

	tx, err := s.builder.BuildBidTransaction(ctx, marketplace.BidParams{
		Mint:          mint,
		Buyer:         account,
		PriceLamports: lamports,
		RoyaltyBps:    collection.SellRoyaltyFeeBPS,
	})
	if err != nil {
		return "", fmt.Errorf("build bid transaction for %s: %w", mint, err)
	}
	if tx == "" {
		return "", errBuildFailed("bid")
	}

	return tx, nil
}

// CreateBuyTransaction builds an unsigned buy transaction at the listing's
// existing price and seller.
func (s *ActionService) CreateBuyTransaction(ctx context.Context, mint string, account string) (string, error) {
	nft, collection, err := s.resolveListed(ctx, mint)
	if err != nil {
		return "", err
	}

	tx, err := s.builder.BuildBuyTransaction(ctx, marketplace.BuyParams{
		Mint:          mint,
		Buyer:         account,
		Seller:        nft.Listing.Seller,
		PriceLamports: nft.Listing.Price,
		RoyaltyBps:    collection.SellRoyaltyFeeBPS,
	})
	if err != nil {
		return "", fmt.Errorf("build buy transaction for %s: %w", mint, err)
	}
	if tx == "" {
		return "", errBuildFailed("buy")
	}

	return tx, nil
}

// resolve fetches the NFT and its collection. The collection lookup only
// runs once the NFT has resolved.
func (s *ActionService) resolve(ctx context.Context, mint string) (*models.NftInfo, *models.Collection, error) {
	nft, err := s.provider.FetchNftInfo(ctx, mint)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch NFT %s: %w", mint, err)
	}
	if nft == nil {
		return nil, nil, errNotFound(mint)
	}

	collection, err := s.provider.FetchCollectionBySlug(ctx, nft.SlugDisplay)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch collection %s: %w", nft.SlugDisplay, err)
	}
	if collection == nil {
		return nil, nil, errCollectionMissing(nft.SlugDisplay)
	}

	return nft, collection, nil
}

// resolveListed is resolve with the listing requirement the transaction
// routes share. The listing check runs before the collection lookup.
func (s *ActionService) resolveListed(ctx context.Context, mint string) (*models.NftInfo, *models.Collection, error) {
	nft, err := s.provider.FetchNftInfo(ctx, mint)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch NFT %s: %w", mint, err)
	}
	if nft == nil {
		return nil, nil, errNotFound(mint)
	}
	if nft.Listing == nil {
		return nil, nil, errNotListed(mint)
	}

	collection, err := s.provider.FetchCollectionBySlug(ctx, nft.SlugDisplay)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch collection %s: %w", nft.SlugDisplay, err)
	}
	if collection == nil {
		return nil, nil, errCollectionMissing(nft.SlugDisplay)
	}

	return nft, collection, nil
}
