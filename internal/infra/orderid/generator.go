// Package orderid generates order identifiers.
package orderid

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	prefix       = "ORD"
	suffixLen    = 9
	base36Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

type generator struct{}

// NewGenerator creates an OrderIDGenerator producing ids of the form
// ORD<unix-millis><9 random base36 chars>. The millisecond component keeps
// ids roughly sortable by creation time; the random suffix, drawn from
// crypto/rand, makes collisions negligible across concurrent submissions.
// Uniqueness is probabilistic, not formal; the order store's create-if-absent
// write catches the residual case.
func NewGenerator() service.OrderIDGenerator {
	return &generator{}
}

// NewOrderID returns a fresh identifier.
func (g *generator) NewOrderID() (string, error) {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + 13 + suffixLen)
	sb.WriteString(prefix)
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	for _, b := range buf {
		sb.WriteByte(base36Digits[int(b)%len(base36Digits)])
	}

	return sb.String(), nil
}
