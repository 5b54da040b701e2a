package domain

// Contact maps a display name (unique, case-insensitive), an optional tag and
// phone number to a settlement address.
type Contact struct {
	Name    string `json:"name"`
	Tag     string `json:"tag,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
}

// ResolvedRecipient is the outcome of a directory lookup.
type ResolvedRecipient struct {
	Address     string `json:"address"`
	DisplayName string `json:"display_name"`
	Tag         string `json:"tag,omitempty"`
}
