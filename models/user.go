package models

// UserMeta carries the display attributes of the acting user, as resolved
// from the identity provider. Stored as snapshots on entities, never synced.
type UserMeta struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ProviderUser is a search result from the external identity provider.
type ProviderUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl"`
}
