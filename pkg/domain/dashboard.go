package domain

// Dashboard is the admin overview of the catalog and its users
type Dashboard struct {
	Profiles        int               `json:"total_users"`
	Events          int               `json:"total_events"`
	Providers       int               `json:"total_providers"`
	ProviderMetrics []ProviderMetrics `json:"provider_metrics"`
	RecentEvents    []Event           `json:"recent_events"`
}

// ProviderMetrics counts the events of a provider. Active events start today or later.
type ProviderMetrics struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TotalEvents  int     `json:"total_events"`
	ActiveEvents int     `json:"active_events"`
	RecentEvents []Event `json:"recent_events"`
}
