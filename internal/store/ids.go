package store

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tickfile/tick/internal/types"
)

// base36Alphabet is the character set for base36 encoding (0-9, a-z)
const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// suffixLength is the number of base36 characters in a generated ID
// suffix. Six characters give ~2.2 billion values, plenty for a store
// that collision-retries.
const suffixLength = 6

// maxIDAttempts bounds collision retries during ID generation.
const maxIDAttempts = 10

// encodeBase36 converts a byte slice to a base36 string of the given
// length, keeping the least significant digits.
func encodeBase36(data []byte, length int) string {
	num := new(big.Int).SetBytes(data)
	base := big.NewInt(36)
	zero := big.NewInt(0)
	mod := new(big.Int)

	chars := make([]byte, 0, length)
	for num.Cmp(zero) > 0 {
		num.DivMod(num, base, mod)
		chars = append(chars, base36Alphabet[mod.Int64()])
	}
	// Digits come out least significant first
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}

	str := string(chars)
	if len(str) < length {
		str = strings.Repeat("0", length-len(str)) + str
	}
	if len(str) > length {
		str = str[len(str)-length:]
	}
	return str
}

// generateID produces a new candidate ticket ID: the store prefix plus
// a random base36 suffix.
func (s *FileStorage) generateID() string {
	u := uuid.New()
	return fmt.Sprintf("%s-%s", s.prefix, encodeBase36(u[:], suffixLength))
}

// nextID generates an ID that does not collide with any existing ticket
// file, retrying a bounded number of times.
func (s *FileStorage) nextID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.generateID()
		if _, err := os.Stat(s.Path(id)); os.IsNotExist(err) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: could not generate a unique ticket ID after %d attempts", types.ErrIO, maxIDAttempts)
}

// DerivePrefix builds a default ID prefix from the ticket directory
// location: the name of the directory containing the store, lowercased
// and stripped to letters and digits. Falls back to "tick".
func DerivePrefix(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	name := filepath.Base(filepath.Dir(abs))
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "tick"
	}
	return b.String()
}
