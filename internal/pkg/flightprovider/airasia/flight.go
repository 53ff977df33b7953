package airasia

import "time"

type SearchFlightResponse struct {
	Status  string   `json:"status"`
	Flights []Flight `json:"flights"`
}

type Flight struct {
	FlightCode    string    `json:"flight_code"`
	Airline       string    `json:"airline"`
	FromAirport   string    `json:"from_airport"`
	FromTerminal  string    `json:"from_terminal"`
	ToAirport     string    `json:"to_airport"`
	ToTerminal    string    `json:"to_terminal"`
	DepartTime    time.Time `json:"depart_time"`
	ArriveTime    time.Time `json:"arrive_time"`
	DurationHours float64   `json:"duration_hours"`
	PriceIDR      int       `json:"price_idr"`
	Seats         int       `json:"seats"`
	CabinClass    string    `json:"cabin_class"`
	ServiceNote   string    `json:"service_note"`
}
