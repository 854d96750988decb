package session

// NavItem is an entry of the dashboard's navigation
type NavItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	AdminOnly bool   `json:"admin_only"`
}

var navItems = []NavItem{
	{ID: "dashboard", Label: "Dashboard"},
	{ID: "products", Label: "Products"},
	{ID: "orders", Label: "Orders"},
	{ID: "analytics", Label: "Analytics", AdminOnly: true},
	{ID: "customers", Label: "Customers", AdminOnly: true},
	{ID: "settings", Label: "Settings"},
}

// NavigationFor returns the navigation visible to a user. Admin-only items
// are hidden from everyone else; this is a display gate, not authorization.
func NavigationFor(admin bool) []NavItem {
	items := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if !item.AdminOnly || admin {
			items = append(items, item)
		}
	}
	return items
}
