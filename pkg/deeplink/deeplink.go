// Package deeplink encodes payment requests as scheme:address?amount=&token=&note= links.
package deeplink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformed is returned by Decode for links that are not scheme:address[?query].
var ErrMalformed = errors.New("malformed deeplink")

// Request is the payload carried by a receive link.
type Request struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
	Token   string          `json:"token"`
	Note    string          `json:"note,omitempty"`
}

// Encode renders r as scheme:address?amount=<amount>&token=<symbol>&note=<note>.
// The note is percent-encoded with spaces as %20.
func Encode(scheme string, r Request) (string, error) {
	scheme = strings.TrimSuffix(strings.TrimSpace(scheme), ":")
	address := strings.TrimSpace(r.Address)
	if scheme == "" || address == "" {
		return "", fmt.Errorf("%w: scheme and address are required", ErrMalformed)
	}
	if r.Amount.IsNegative() {
		return "", fmt.Errorf("%w: negative amount", ErrMalformed)
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteByte(':')
	b.WriteString(address)
	b.WriteString("?amount=")
	b.WriteString(r.Amount.String())
	b.WriteString("&token=")
	b.WriteString(escape(strings.ToUpper(strings.TrimSpace(r.Token))))
	b.WriteString("&note=")
	b.WriteString(escape(r.Note))
	return b.String(), nil
}

// Decode parses a link produced by Encode. The scheme must match.
func Decode(scheme, link string) (Request, error) {
	scheme = strings.TrimSuffix(strings.TrimSpace(scheme), ":")
	rest, ok := strings.CutPrefix(strings.TrimSpace(link), scheme+":")
	if !ok || scheme == "" {
		return Request{}, fmt.Errorf("%w: expected %s: prefix", ErrMalformed, scheme)
	}

	address, rawQuery, _ := strings.Cut(rest, "?")
	if address == "" {
		return Request{}, fmt.Errorf("%w: missing address", ErrMalformed)
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	r := Request{Address: address, Token: q.Get("token"), Note: q.Get("note")}
	if raw := q.Get("amount"); raw != "" {
		if r.Amount, err = decimal.NewFromString(raw); err != nil {
			return Request{}, fmt.Errorf("%w: amount %q", ErrMalformed, raw)
		}
	}
	return r, nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
