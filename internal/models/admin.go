package models

// DashboardStats are the platform totals shown on the admin overview
type DashboardStats struct {
	TotalUsers      int     `json:"total_users"`
	TotalPartners   int     `json:"total_partners"`
	TotalEvents     int     `json:"total_events"`
	TotalBookings   int     `json:"total_bookings"`
	PendingPartners int     `json:"pending_partners"`
	PendingEvents   int     `json:"pending_events"`
	TotalRevenue    float64 `json:"total_revenue"`
	PlatformFees    float64 `json:"platform_fees"`
	UsersChange     float64 `json:"users_change,omitempty"`
	PartnersChange  float64 `json:"partners_change,omitempty"`
	EventsChange    float64 `json:"events_change,omitempty"`
}

// AdminActivity is one entry of the admin audit trail
type AdminActivity struct {
	ID           int    `json:"id"`
	AdminEmail   string `json:"admin_email"`
	Action       string `json:"action"`
	ResourceType string `json:"resource_type"`
	ResourceID   *int   `json:"resource_id"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
}

// AdminDashboard is the admin overview payload
type AdminDashboard struct {
	Stats          DashboardStats  `json:"stats"`
	RecentActivity []AdminActivity `json:"recent_activity"`
}
