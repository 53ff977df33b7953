package providerutils

// AirportInfo carries the display metadata providers rarely send in full.
type AirportInfo struct {
	Name string
	City string
}

// Airports maps IATA location codes to display metadata for the network the
// mock providers cover.
var Airports = map[string]AirportInfo{
	"CGK": {Name: "Soekarno-Hatta International Airport", City: "Jakarta"},
	"DPS": {Name: "I Gusti Ngurah Rai International Airport", City: "Denpasar"},
	"SUB": {Name: "Juanda International Airport", City: "Surabaya"},
	"UPG": {Name: "Sultan Hasanuddin International Airport", City: "Makassar"},
	"KNO": {Name: "Kualanamu International Airport", City: "Medan"},
	"JOG": {Name: "Yogyakarta International Airport", City: "Yogyakarta"},
	"BPN": {Name: "Sultan Aji Muhammad Sulaiman Airport", City: "Balikpapan"},
	"PLM": {Name: "Sultan Mahmud Badaruddin II Airport", City: "Palembang"},
}

// AirportName returns the display name of a location code, empty when unknown.
func AirportName(code string) string {
	return Airports[code].Name
}

// AirportCity returns the city of a location code, empty when unknown.
func AirportCity(code string) string {
	return Airports[code].City
}
