package lionair

type SearchFlightResponse struct {
	Success bool `json:"success"`
	Data    Data `json:"data"`
}

type Data struct {
	AvailableFlights []Flight `json:"available_flights"`
}

type Flight struct {
	ID         string   `json:"id"`
	Route      Route    `json:"route"`
	Schedule   Schedule `json:"schedule"`
	FlightTime int      `json:"flight_time"`
	Pricing    Pricing  `json:"pricing"`
	SeatsLeft  int      `json:"seats_left"`
	PlaneType  string   `json:"plane_type"`
	Services   Services `json:"services"`
}

type Route struct {
	From RoutePoint `json:"from"`
	To   RoutePoint `json:"to"`
}

type RoutePoint struct {
	Code     string `json:"code"`
	City     string `json:"city"`
	Terminal string `json:"terminal"`
}

type Schedule struct {
	Departure         string `json:"departure"`
	DepartureTimezone string `json:"departure_timezone"`
	Arrival           string `json:"arrival"`
	ArrivalTimezone   string `json:"arrival_timezone"`
}

type Pricing struct {
	Total    int    `json:"total"`
	Currency string `json:"currency"`
	FareType string `json:"fare_type"`
}

type Services struct {
	WifiAvailable bool `json:"wifi_available"`
	MealsIncluded bool `json:"meals_included"`
}
