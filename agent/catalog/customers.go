package catalog

import "time"

// CustomerRecord is keyed by exact email match.
type CustomerRecord struct {
	Email     string
	Name      string
	Purchases []PurchaseRecord
}

type PurchaseRecord struct {
	Product         string
	SerialNumber    string
	PurchaseDate    string
	WarrantyExpires string
	Retailer        string
	OrderNumber     string
}

// WarrantyRecord is keyed by serial number.
type WarrantyRecord struct {
	SerialNumber    string
	Product         string
	PurchaseDate    string
	WarrantyExpires string
	WarrantyType    string
	Coverage        string
}

const dateLayout = "2006-01-02"

// ExpiryTime parses the warranty expiry date. Mock dates are static, so
// a parse failure means the table itself is broken.
func (p PurchaseRecord) ExpiryTime() (time.Time, error) {
	return time.Parse(dateLayout, p.WarrantyExpires)
}

func (w WarrantyRecord) ExpiryTime() (time.Time, error) {
	return time.Parse(dateLayout, w.WarrantyExpires)
}

var mockCustomers = []CustomerRecord{
	{
		Email: "john.doe@email.com",
		Name:  "John Doe",
		Purchases: []PurchaseRecord{
			{
				Product:         "Zoom H6",
				SerialNumber:    "H6-2024-001234",
				PurchaseDate:    "2024-01-15",
				WarrantyExpires: "2027-01-15",
				Retailer:        "Sweetwater",
				OrderNumber:     "SW-12345",
			},
		},
	},
	{
		Email: "jane.smith@email.com",
		Name:  "Jane Smith",
		Purchases: []PurchaseRecord{
			{
				Product:         "Zoom PodTrak P4",
				SerialNumber:    "P4-2024-005678",
				PurchaseDate:    "2024-03-20",
				WarrantyExpires: "2027-03-20",
				Retailer:        "Amazon",
				OrderNumber:     "AMZ-67890",
			},
		},
	},
	{
		Email: "bob.wilson@email.com",
		Name:  "Bob Wilson",
		Purchases: []PurchaseRecord{
			{
				Product:         "Zoom H4n Pro",
				SerialNumber:    "H4N-2023-009876",
				PurchaseDate:    "2023-11-10",
				WarrantyExpires: "2026-11-10",
				Retailer:        "B&H Photo",
				OrderNumber:     "BH-54321",
			},
		},
	},
}

var mockWarranties = []WarrantyRecord{
	{
		SerialNumber:    "H6-2024-001234",
		Product:         "Zoom H6",
		PurchaseDate:    "2024-01-15",
		WarrantyExpires: "2027-01-15",
		WarrantyType:    "3-year limited warranty",
		Coverage:        "Parts and labor for manufacturing defects",
	},
	{
		SerialNumber:    "P4-2024-005678",
		Product:         "Zoom PodTrak P4",
		PurchaseDate:    "2024-03-20",
		WarrantyExpires: "2027-03-20",
		WarrantyType:    "3-year limited warranty",
		Coverage:        "Parts and labor for manufacturing defects",
	},
	{
		SerialNumber:    "H4N-2023-009876",
		Product:         "Zoom H4n Pro",
		PurchaseDate:    "2023-11-10",
		WarrantyExpires: "2026-11-10",
		WarrantyType:    "3-year limited warranty",
		Coverage:        "Parts and labor for manufacturing defects",
	},
}
