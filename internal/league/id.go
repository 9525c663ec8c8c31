package league

import (
	"crypto/rand"
	"math/big"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
const idLength = 9

// NewID returns a short random base-36 identifier, the same shape the sheet
// already contains. Collisions are accepted as negligible and not defended
// against.
func NewID() string {
	max := big.NewInt(int64(len(idAlphabet)))
	b := make([]byte, idLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b)
}
