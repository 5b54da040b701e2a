package service

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"
)

// minPhoneDigits is the shortest digit run treated as a phone number.
const minPhoneDigits = 7

// Directory maps contact names, tags and phone numbers to settlement addresses.
// Names are unique and matched case-insensitively.
type Directory struct {
	mu      sync.RWMutex
	byName  map[string]domain.Contact
	byTag   map[string]string // normalised tag -> name key
	byPhone map[string]string // digits -> name key
}

// NewDirectory creates a directory seeded with contacts. Invalid seeds are skipped.
func NewDirectory(contacts ...domain.Contact) *Directory {
	d := &Directory{
		byName:  make(map[string]domain.Contact),
		byTag:   make(map[string]string),
		byPhone: make(map[string]string),
	}
	for _, c := range contacts {
		_ = d.Add(c)
	}
	return d
}

// Add inserts or replaces a contact.
func (d *Directory) Add(c domain.Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	if c.Name == "" || c.Address == "" {
		return apperror.Validation("contact name and address are required")
	}
	key := nameKey(c.Name)

	d.mu.Lock()
	defer d.mu.Unlock()

	// A tag or phone taken over by another contact stays with that contact.
	if prev, ok := d.byName[key]; ok {
		if t := tagKey(prev.Tag); d.byTag[t] == key {
			delete(d.byTag, t)
		}
		if p := phoneDigits(prev.Phone); d.byPhone[p] == key {
			delete(d.byPhone, p)
		}
	}
	d.byName[key] = c
	if t := tagKey(c.Tag); t != "" {
		d.byTag[t] = key
	}
	if p := phoneDigits(c.Phone); len(p) >= minPhoneDigits {
		d.byPhone[p] = key
	}
	return nil
}

// Lookup returns the contact with the given name.
func (d *Directory) Lookup(name string) (domain.Contact, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.byName[nameKey(name)]
	return c, ok
}

// Resolve matches query against tags (with or without "@"), phone numbers and names.
func (d *Directory) Resolve(query string) (domain.ResolvedRecipient, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return domain.ResolvedRecipient{}, apperror.ErrUnresolvedRecipient(query)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if key, ok := d.byTag[tagKey(q)]; ok {
		return toResolved(d.byName[key]), nil
	}
	if p := phoneDigits(q); len(p) >= minPhoneDigits && looksLikePhone(q) {
		if key, ok := d.byPhone[p]; ok {
			return toResolved(d.byName[key]), nil
		}
	}
	if c, ok := d.byName[nameKey(q)]; ok {
		return toResolved(c), nil
	}
	return domain.ResolvedRecipient{}, apperror.ErrUnresolvedRecipient(q)
}

// ResolveAddress is the lenient lookup used by escrow creation: an unknown
// recipient is taken to be a literal address and displayed as given.
func (d *Directory) ResolveAddress(recipient string) (address, displayName string) {
	if r, err := d.Resolve(recipient); err == nil {
		return r.Address, r.DisplayName
	}
	literal := strings.TrimSpace(recipient)
	return literal, literal
}

// List returns all contacts sorted by name.
func (d *Directory) List() []domain.Contact {
	d.mu.RLock()
	out := make([]domain.Contact, 0, len(d.byName))
	for _, c := range d.byName {
		out = append(out, c)
	}
	d.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return nameKey(out[i].Name) < nameKey(out[j].Name) })
	return out
}

func toResolved(c domain.Contact) domain.ResolvedRecipient {
	return domain.ResolvedRecipient{Address: c.Address, DisplayName: c.Name, Tag: c.Tag}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func tagKey(tag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "@"))
}

func phoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// looksLikePhone rejects names that merely contain digits.
func looksLikePhone(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !strings.ContainsRune("+-() .", r) {
			return false
		}
	}
	return true
}
