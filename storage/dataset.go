package storage

import "github.com/poiesic/flightdesk/core"

// ReferenceFlights is the illustrative dataset loaded into an empty store.
// Five records are enough to exercise every pipeline path.
var ReferenceFlights = []core.FlightRecord{
	{
		FlightNumber:  "NY100",
		Origin:        "New York",
		Destination:   "London",
		DepartureTime: "2025-05-01 08:00",
		Airline:       "Global Airways",
	},
	{
		FlightNumber:  "LA200",
		Origin:        "Los Angeles",
		Destination:   "Tokyo",
		DepartureTime: "2025-05-01 10:30",
		Airline:       "Pacific Routes",
	},
	{
		FlightNumber:  "CH300",
		Origin:        "Chicago",
		Destination:   "Paris",
		DepartureTime: "2025-05-01 15:45",
		Airline:       "Euro Connect",
	},
	{
		FlightNumber:  "SF400",
		Origin:        "San Francisco",
		Destination:   "Sydney",
		DepartureTime: "2025-05-01 23:15",
		Airline:       "Ocean Pacific",
	},
	{
		FlightNumber:  "MI500",
		Origin:        "Miami",
		Destination:   "Rio de Janeiro",
		DepartureTime: "2025-05-02 07:30",
		Airline:       "South American Airways",
	},
}
