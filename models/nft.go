package models

// NftInfo is the marketplace's view of a single NFT.
type NftInfo struct {
	Mint        string   `json:"mint"`
	Name        string   `json:"name"`
	ImageUri    string   `json:"imageUri"`
	SlugDisplay string   `json:"slugDisplay"`
	Listing     *Listing `json:"listing,omitempty"`
}

// Listing is present when the NFT is currently for sale. Price is in
// lamports, carried as a string by the marketplace API.
type Listing struct {
	Price  string `json:"price"`
	Seller string `json:"seller"`
}

// Collection groups NFTs sharing royalty terms and descriptive metadata.
type Collection struct {
	SlugDisplay       string `json:"slugDisplay"`
	Description       string `json:"description"`
	SellRoyaltyFeeBPS int    `json:"sellRoyaltyFeeBPS"`
}
