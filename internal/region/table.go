package region

import "github.com/applicare/backend/internal/models"

// DefaultTable is the cached pincode-prefix mapping used when the live
// lookup is unavailable. Prefix patterns keep their "xx" tail; only the
// first 4 characters take part in matching.
func DefaultTable() []models.RegionEntry {
	return []models.RegionEntry{
		{PincodePrefix: "5600xx", RegionLabel: "Bengaluru Urban"},
		{PincodePrefix: "4000xx", RegionLabel: "Mumbai Suburban"},
		{PincodePrefix: "1100xx", RegionLabel: "Delhi"},
	}
}
