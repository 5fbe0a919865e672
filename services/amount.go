package services

import (
	"fmt"
	"math/big"
)

// LamportsPerSol is the number of lamports in one SOL.
const LamportsPerSol = 1_000_000_000

// SolToLamports converts a decimal SOL amount to lamports, rounding half-up
// (away from zero). Zero and negative amounts convert like any other; the
// transaction builder is the authority on rejecting them.
func SolToLamports(amount string) (int64, error) {
	val, _, err := big.ParseFloat(amount, 10, 256, big.ToNearestEven)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	val.Mul(val, new(big.Float).SetInt64(LamportsPerSol))
	if val.Signbit() {
		val.Sub(val, big.NewFloat(0.5))
	} else {
		val.Add(val, big.NewFloat(0.5))
	}

	lamports, _ := val.Int64()
	return lamports, nil
}

// FormatSol renders a lamport amount, as carried by the marketplace API, as
// a minimal decimal SOL string ("1", "1.35").
func FormatSol(lamports string) (string, error) {
	val, _, err := big.ParseFloat(lamports, 10, 256, big.ToNearestEven)
	if err != nil {
		return "", fmt.Errorf("invalid lamport amount %q: %w", lamports, err)
	}

	val.Quo(val, new(big.Float).SetInt64(LamportsPerSol))
	return val.Text('f', -1), nil
}
