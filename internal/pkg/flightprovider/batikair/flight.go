package batikair

type SearchFlightResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Results []Flight `json:"results"`
}

type Flight struct {
	FlightNumber      string   `json:"flightNumber"`
	AirlineName       string   `json:"airlineName"`
	AirlineIATA       string   `json:"airlineIATA"`
	Origin            string   `json:"origin"`
	Destination       string   `json:"destination"`
	OriginTerminal    string   `json:"originTerminal"`
	DestTerminal      string   `json:"destTerminal"`
	DepartureDateTime string   `json:"departureDateTime"`
	ArrivalDateTime   string   `json:"arrivalDateTime"`
	TravelTime        string   `json:"travelTime"`
	Fare              Fare     `json:"fare"`
	SeatsAvailable    int      `json:"seatsAvailable"`
	AircraftModel     string   `json:"aircraftModel"`
	OnboardServices   []string `json:"onboardServices"`
}

type Fare struct {
	BasePrice    int    `json:"basePrice"`
	Taxes        int    `json:"taxes"`
	TotalPrice   int    `json:"totalPrice"`
	CurrencyCode string `json:"currencyCode"`
	Class        string `json:"class"`
}
