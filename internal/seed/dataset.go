package seed

// The fixed demo dataset. Everything here is deterministic so that two
// reset runs produce byte-identical databases; per-row variation is
// derived from indices, never from randomness.

type provinceDef struct {
	Name   string   `validate:"required"`
	Code   string   `validate:"required,province_code"`
	Cities []string `validate:"required,len=3,dive,required"`
}

type countryDef struct {
	Name      string        `validate:"required"`
	Code      string        `validate:"required,uppercase,min=2,max=10"`
	Provinces []provinceDef `validate:"required,dive"`
}

// addressCityDef names a seeded city that receives demo addresses,
// with the postal prefix and coordinates demo rows are derived from.
type addressCityDef struct {
	City         string  `validate:"required"`
	PostalPrefix string  `validate:"required,len=3"`
	Latitude     float64 `validate:"min=-90,max=90"`
	Longitude    float64 `validate:"min=-180,max=180"`
}

type categoryDef struct {
	Title       string `validate:"required,max=50"`
	Description string
}

type unitDef struct {
	Name string `validate:"required,max=50"`
	Code string `validate:"required,uppercase,max=10"`
}

type serviceTypeDef struct {
	Title string `validate:"required,max=50"`
	Price string `validate:"required"`
}

type serviceDef struct {
	Title         string `validate:"required,max=50"`
	Description   string
	TradeRequired bool
	Price         string           `validate:"required"`
	Types         []serviceTypeDef `validate:"required,min=1,max=2,dive"`
	Rating        int              `validate:"min=1,max=5"`
	Review        string
}

type userDef struct {
	Email     string `validate:"required,email"`
	FirstName string `validate:"required,min=2,max=30"`
	LastName  string `validate:"required,min=2,max=30"`
}

// Dataset is the full seed input. Services, units, and categories are
// parallel slices: service i is billed in unit i and grouped under
// category i.
type Dataset struct {
	Country          countryDef       `validate:"required"`
	AddressCities    []addressCityDef `validate:"required,len=6,dive"`
	AddressesPerCity int              `validate:"required,min=1"`
	Categories       []categoryDef    `validate:"required,len=5,dive"`
	Units            []unitDef        `validate:"required,len=5,dive"`
	Services         []serviceDef     `validate:"required,len=5,dive"`
	ProviderUsers    []userDef        `validate:"required,dive"`
}

// DefaultDataset returns the standard demo dataset: Canada with its 13
// provinces and territories, three cities each, and a five-entry
// service taxonomy.
func DefaultDataset() *Dataset {
	return &Dataset{
		Country: countryDef{
			Name: "Canada",
			Code: "CA",
			Provinces: []provinceDef{
				{Name: "Alberta", Code: "AB", Cities: []string{"Calgary", "Edmonton", "Red Deer"}},
				{Name: "British Columbia", Code: "BC", Cities: []string{"Vancouver", "Victoria", "Surrey"}},
				{Name: "Manitoba", Code: "MB", Cities: []string{"Winnipeg", "Brandon", "Steinbach"}},
				{Name: "New Brunswick", Code: "NB", Cities: []string{"Moncton", "Saint John", "Fredericton"}},
				{Name: "Newfoundland and Labrador", Code: "NL", Cities: []string{"St. John's", "Mount Pearl", "Corner Brook"}},
				{Name: "Nova Scotia", Code: "NS", Cities: []string{"Halifax", "Dartmouth", "Sydney"}},
				{Name: "Northwest Territories", Code: "NT", Cities: []string{"Yellowknife", "Hay River", "Inuvik"}},
				{Name: "Nunavut", Code: "NU", Cities: []string{"Iqaluit", "Rankin Inlet", "Arviat"}},
				{Name: "Ontario", Code: "ON", Cities: []string{"Toronto", "Ottawa", "Mississauga"}},
				{Name: "Prince Edward Island", Code: "PE", Cities: []string{"Charlottetown", "Summerside", "Stratford"}},
				{Name: "Quebec", Code: "QC", Cities: []string{"Montreal", "Quebec City", "Laval"}},
				{Name: "Saskatchewan", Code: "SK", Cities: []string{"Saskatoon", "Regina", "Moose Jaw"}},
				{Name: "Yukon", Code: "YT", Cities: []string{"Whitehorse", "Dawson City", "Watson Lake"}},
			},
		},
		AddressCities: []addressCityDef{
			{City: "Toronto", PostalPrefix: "M5V", Latitude: 43.6426, Longitude: -79.3871},
			{City: "Ottawa", PostalPrefix: "K1P", Latitude: 45.4215, Longitude: -75.6972},
			{City: "Mississauga", PostalPrefix: "L5B", Latitude: 43.5890, Longitude: -79.6441},
			{City: "Vancouver", PostalPrefix: "V6B", Latitude: 49.2827, Longitude: -123.1207},
			{City: "Calgary", PostalPrefix: "T2P", Latitude: 51.0447, Longitude: -114.0719},
			{City: "Montreal", PostalPrefix: "H3B", Latitude: 45.5017, Longitude: -73.5673},
		},
		AddressesPerCity: 10,
		Categories: []categoryDef{
			{Title: "Home Cleaning", Description: "Recurring and one-time cleaning for houses and condos."},
			{Title: "Plumbing", Description: "Licensed plumbing repair and installation."},
			{Title: "Electrical", Description: "Licensed electrical work, panels, and wiring."},
			{Title: "Landscaping", Description: "Lawn, garden, and outdoor maintenance."},
			{Title: "Painting", Description: "Interior and exterior painting."},
		},
		Units: []unitDef{
			{Name: "Hour", Code: "HR"},
			{Name: "Visit", Code: "VST"},
			{Name: "Project", Code: "PRJ"},
			{Name: "Square Foot", Code: "SQFT"},
			{Name: "Room", Code: "RM"},
		},
		Services: []serviceDef{
			{
				Title:       "Deep House Cleaning",
				Description: "Top-to-bottom cleaning including baseboards, appliances, and windows.",
				Price:       "45.00",
				Types: []serviceTypeDef{
					{Title: "Standard Clean", Price: "45.00"},
					{Title: "Move-Out Clean", Price: "65.00"},
				},
				Rating: 5,
				Review: "Spotless apartment, would book again.",
			},
			{
				Title:         "Drain and Faucet Repair",
				Description:   "Diagnosis and repair of household drains and fixtures.",
				TradeRequired: true,
				Price:         "120.00",
				Types:         []serviceTypeDef{{Title: "Leak Inspection", Price: "80.00"}},
				Rating:        5,
				Review:        "Fixed the kitchen leak in under an hour.",
			},
			{
				Title:         "Panel Upgrade",
				Description:   "Electrical service panel replacement by a licensed electrician.",
				TradeRequired: true,
				Price:         "1500.00",
				Types: []serviceTypeDef{
					{Title: "100A to 200A Upgrade", Price: "1500.00"},
					{Title: "EV Charger Rough-In", Price: "450.00"},
				},
				Rating: 4,
				Review: "Clean install, passed inspection first try.",
			},
			{
				Title:         "Lawn Care",
				Description:   "Mowing, edging, and seasonal fertilizing.",
				Price:         "0.12",
				Types:         []serviceTypeDef{{Title: "Weekly Mowing", Price: "35.00"}},
				Rating:        4,
				Review:        "Reliable weekly service all summer.",
			},
			{
				Title:       "Interior Painting",
				Description: "Walls, ceilings, and trim with low-VOC paint.",
				Price:       "220.00",
				Types: []serviceTypeDef{
					{Title: "Single Room", Price: "220.00"},
					{Title: "Accent Wall", Price: "90.00"},
				},
				Rating: 3,
				Review: "Good finish but the crew arrived late twice.",
			},
		},
		ProviderUsers: []userDef{
			{Email: "ava.tremblay@example.com", FirstName: "Ava", LastName: "Tremblay"},
			{Email: "liam.chen@example.com", FirstName: "Liam", LastName: "Chen"},
			{Email: "noah.singh@example.com", FirstName: "Noah", LastName: "Singh"},
			{Email: "emma.roy@example.com", FirstName: "Emma", LastName: "Roy"},
			{Email: "olivia.martin@example.com", FirstName: "Olivia", LastName: "Martin"},
			{Email: "lucas.gagnon@example.com", FirstName: "Lucas", LastName: "Gagnon"},
			{Email: "mia.wong@example.com", FirstName: "Mia", LastName: "Wong"},
			{Email: "ethan.cote@example.com", FirstName: "Ethan", LastName: "Cote"},
		},
	}
}

// streetNames is the rotating pool demo addresses draw from.
var streetNames = []string{
	"King Street West",
	"Bank Street",
	"Hurontario Street",
	"Granville Street",
	"Stephen Avenue",
	"Rue Sainte-Catherine",
	"Queen Street East",
	"Wellington Street",
	"Lakeshore Road",
	"Main Street",
}

// postalLetters excludes the letters Canada Post never uses.
const postalLetters = "BCEGHJKLMNPRSTVWXYZ"
