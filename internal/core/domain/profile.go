package domain

import "time"

// VendorProfile is the read-only account record shown on the profile page.
type VendorProfile struct {
	ID               string
	LegalName        string
	GSTIN            string
	Category         string
	EmployeeCount    int
	LastYearTurnover string
	Experience       string
	BillingAddress   string
	WarehouseAddress string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
