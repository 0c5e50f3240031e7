package offers

// Response is the subset of the flight-offers payload the service reads.
type Response struct {
	Data []Offer `json:"data"`
}

// Offer is one priced travel option.
type Offer struct {
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

// Itinerary is one directional journey, such as the outbound leg.
type Itinerary struct {
	// Duration uses the ISO-8601 duration notation, e.g. "PT15H30M".
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flight within an itinerary.
type Segment struct {
	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// SearchRequest holds the query parameters sent to the flight-offers endpoint.
type SearchRequest struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
	Max           int
}
