// Package cryptids generates random string identifiers from crypto/rand.
// Used for session tokens and request trace IDs.
package cryptids

import (
	"crypto/rand"
	"fmt"
)

var (
	IDAlphabet = "bcdfghjklmnpqrstvwxyZBCDFGHJKLMNPQRSTVWXYZ0123456789"
	IDLength   = 18

	// TokenLength is used for session tokens, which guard access to user
	// data and need more entropy than a trace ID.
	TokenLength = 36
)

// GenerateID creates a random string from defaults
func GenerateID() (string, error) {
	return generateID(IDAlphabet, IDLength)
}

// GenerateToken creates a random session token.
func GenerateToken() (string, error) {
	return generateID(IDAlphabet, TokenLength)
}

// GenerateCustomID creates a random string with the given alphabet and length
func GenerateCustomID(alphabet string, size int) (string, error) {
	return generateID(alphabet, size)
}

func generateID(alphabet string, size int) (string, error) {
	if len(alphabet) < 2 {
		return "", fmt.Errorf("alphabet must contain at least 2 characters")
	}
	if size < 1 {
		return "", fmt.Errorf("size must be at least 1")
	}

	// Mask is the closest power-of-2 bound over the alphabet length; applying
	// it keeps the character distribution uniform.
	mask := 1
	for mask < len(alphabet) {
		mask = (mask << 1) | 1
	}

	// Larger read buffer avoids repeated RNG calls when indexes get skipped.
	step := int(float64(size) * 1.6)
	if step < size {
		step = size
	}

	id := make([]byte, size)
	bytes := make([]byte, step)

	idIndex := 0
	for idIndex < size {
		_, err := rand.Read(bytes)
		if err != nil {
			return "", err
		}

		for i := 0; i < len(bytes) && idIndex < size; i++ {
			alphabetIndex := int(bytes[i]) & mask

			// Skip if the index is out of range
			if alphabetIndex >= len(alphabet) {
				continue
			}

			id[idIndex] = alphabet[alphabetIndex]
			idIndex++
		}
	}

	return string(id), nil
}
