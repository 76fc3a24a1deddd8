package config

import "github.com/Leafline-Dispensary/leafline-storefront-backend/models"

// storeLocations is the static location registry. Hours and addresses
// change rarely enough that code review is an acceptable edit path, and
// the intent router needs the keyword lists at startup.
var storeLocations = []models.StoreLocation{
	{
		ID:       "store_uptown",
		Name:     "Leafline Uptown",
		Address:  "1438 Hennepin Ave",
		City:     "Minneapolis",
		Phone:    "(612) 555-0161",
		Hours:    "Mon–Sat 9am–9pm, Sun 10am–6pm",
		Keywords: []string{"uptown", "hennepin", "minneapolis"},
	},
	{
		ID:       "store_stpaul",
		Name:     "Leafline Grand Ave",
		Address:  "867 Grand Ave",
		City:     "St Paul",
		Phone:    "(651) 555-0134",
		Hours:    "Mon–Sat 10am–8pm, Sun closed",
		Keywords: []string{"grand", "st paul", "saint paul", "st. paul"},
	},
	{
		ID:       "store_duluth",
		Name:     "Leafline Canal Park",
		Address:  "310 Lake Ave S",
		City:     "Duluth",
		Phone:    "(218) 555-0188",
		Hours:    "Daily 10am–8pm",
		Keywords: []string{"duluth", "canal park", "lake ave"},
	},
}

// Stores returns the configured store locations.
func Stores() []models.StoreLocation {
	return storeLocations
}
