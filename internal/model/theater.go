package model

// MovieTheater represents a venue where movies are shown, as stored in the
// `movie_theaters` table.  Location is kept as a plain latitude/longitude
// pair; geospatial querying is not a concern of this service.
//
// Fields:
//
//	ID        – primary key identifier.
//	Name      – venue name.
//	Latitude  – WGS84 latitude of the venue.
//	Longitude – WGS84 longitude of the venue.
type MovieTheater struct {
	ID        uint64  `json:"id"`        // movie_theaters.id
	Name      string  `json:"name"`      // movie_theaters.name
	Latitude  float64 `json:"latitude"`  // movie_theaters.latitude
	Longitude float64 `json:"longitude"` // movie_theaters.longitude
}
