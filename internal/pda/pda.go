// Package pda computes Solana program-derived addresses off-chain. The
// metadata-account fallback needs a real derived address when the lookup
// tool is absent; a fabricated placeholder would fail at the next stage.
package pda

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

const derivedAddressMarker = "ProgramDerivedAddress"

// ErrNoBumpFound means no bump seed produced an off-curve point. With
// SHA-256 output this is not expected to occur in practice.
var ErrNoBumpFound = errors.New("pda: no valid bump seed found")

// FindProgramAddress derives the first off-curve address for the given
// seeds and program id, searching bump seeds from 255 downward. The result
// is deterministic for a given input.
func FindProgramAddress(seeds [][]byte, programID []byte) (string, error) {
	if len(programID) != 32 {
		return "", fmt.Errorf("pda: program id must be 32 bytes, got %d", len(programID))
	}
	for bump := 255; bump > 0; bump-- {
		data := make([]byte, 0, 128)
		for _, seed := range seeds {
			data = append(data, seed...)
		}
		data = append(data, byte(bump))
		data = append(data, programID...)
		data = append(data, []byte(derivedAddressMarker)...)

		hash := sha256.Sum256(data)
		if !isOnCurve(hash[:]) {
			return base58.Encode(hash[:]), nil
		}
	}
	return "", ErrNoBumpFound
}

// MetadataAddress derives the token-metadata account for a mint: the PDA of
// ("metadata", metadata program id, mint) under the metadata program.
func MetadataAddress(mint, metadataProgramID string) (string, error) {
	mintBytes, err := base58.Decode(mint)
	if err != nil {
		return "", fmt.Errorf("pda: decode mint: %w", err)
	}
	if len(mintBytes) != 32 {
		return "", fmt.Errorf("pda: mint must decode to 32 bytes, got %d", len(mintBytes))
	}
	programBytes, err := base58.Decode(metadataProgramID)
	if err != nil {
		return "", fmt.Errorf("pda: decode program id: %w", err)
	}
	seeds := [][]byte{[]byte("metadata"), programBytes, mintBytes}
	return FindProgramAddress(seeds, programBytes)
}

func isOnCurve(point []byte) bool {
	if len(point) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}
