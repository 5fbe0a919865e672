package services

import "fmt"

// Kind enumerates the failure classes a request can end in.
type Kind int

const (
	// KindNotFound means the mint did not resolve to an NFT.
	KindNotFound Kind = iota + 1
	// KindNotListed means the NFT exists but has no active listing.
	KindNotListed
	// KindCollectionMissing means a resolved NFT points at a collection the
	// marketplace cannot find. Upstream inconsistency, not user error.
	KindCollectionMissing
	// KindBuildFailed means the transaction builder declined to produce a
	// transaction.
	KindBuildFailed
)

// Error carries one of the named kinds plus a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errNotFound(mint string) *Error {
	return &Error{KindNotFound, fmt.Sprintf("NFT %s not found", mint)}
}

func errNotListed(mint string) *Error {
	return &Error{KindNotListed, fmt.Sprintf("NFT %s is not listed for sale", mint)}
}

func errCollectionMissing(slug string) *Error {
	return &Error{KindCollectionMissing, fmt.Sprintf("collection %s not found", slug)}
}

func errBuildFailed(op string) *Error {
	return &Error{KindBuildFailed, "failed to build " + op + " transaction"}
}
