package impl

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"net/mail"
	"strings"

	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/errors"
)

const (
	minPasswordLength     = 8
	resetTokenBytes       = 32
	temporaryPasswordSize = 12

	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*"
)

// hashToken is the lookup key stored for refresh and reset tokens.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func randomToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// temporaryPassword contains at least one upper, lower, digit and symbol character.
func temporaryPassword() (string, error) {
	all := upperChars + lowerChars + digitChars + symbolChars
	sets := []string{upperChars, lowerChars, digitChars, symbolChars}

	out := make([]byte, 0, temporaryPasswordSize)
	for len(out) < temporaryPasswordSize {
		set := all
		if len(out) < len(sets) {
			set = sets[len(out)]
		}

		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Shuffle so the guaranteed classes are not always in front.
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", errors.Wrap(err, "failed to shuffle password")
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}

	return string(out), nil
}

func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, errors.Wrap(err, "failed to pick random character")
	}

	return set[n.Int64()], nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("field=password; at least 8 characters")
	}

	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domainerrors.ErrValidationFailed.WithField("email")
	}

	return email, nil
}

// mapUserWriteError turns unique violations into the matching conflict.
func mapUserWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrEmailTaken
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.ErrUsernameTaken
	default:
		return err
	}
}
