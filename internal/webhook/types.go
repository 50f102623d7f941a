package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP or CIDR allow-list (optional)
	RateLimitPerMin int      // Max requests per minute per source
}

// inboxPayload is the body accepted on /webhook/inbox/:source.
type inboxPayload struct {
	ExternalID string `json:"external_id" binding:"required,max=255"`
	PropertyID string `json:"property_id" binding:"required"`
	Title      string `json:"title"       binding:"required,max=255"`
	Body       string `json:"body"        binding:"max=8000"`
	Urgency    string `json:"urgency"     binding:"omitempty,max=16"`
}

type ingestResp struct {
	Status  string `json:"status"`
	ItemID  string `json:"item_id"`
	Urgency string `json:"urgency"`
}
