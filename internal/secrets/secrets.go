// Where: cli/internal/secrets/secrets.go
// What: Auth secret generation.
// Why: Provide a cryptographically random session-signing secret for the starter app.
package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const authSecretBytes = 32

// GenerateAuthSecret returns 32 bytes of randomness hex-encoded to 64
// lowercase characters. A nil reader selects crypto/rand. Failure to
// read randomness is returned as an error; there is no fallback value.
func GenerateAuthSecret(random io.Reader) (string, error) {
	if random == nil {
		random = rand.Reader
	}
	buf := make([]byte, authSecretBytes)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
