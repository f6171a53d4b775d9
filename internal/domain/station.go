package domain

// Coordinate is a WGS-84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// stationCoords locates the twelve PRSA monitoring sites. Stations outside
// this table have no coordinate and are left out of the geographic summary.
var stationCoords = map[string]Coordinate{
	"Aotizhongxin":  {Lat: 39.982, Lon: 116.417},
	"Changping":     {Lat: 40.220, Lon: 116.231},
	"Dingling":      {Lat: 40.290, Lon: 116.220},
	"Dongsi":        {Lat: 39.929, Lon: 116.417},
	"Guanyuan":      {Lat: 39.933, Lon: 116.339},
	"Gucheng":       {Lat: 39.907, Lon: 116.152},
	"Huairou":       {Lat: 40.409, Lon: 116.630},
	"Nongzhanguan":  {Lat: 39.933, Lon: 116.461},
	"Shunyi":        {Lat: 40.128, Lon: 116.654},
	"Tiantan":       {Lat: 39.886, Lon: 116.421},
	"Wanliu":        {Lat: 39.974, Lon: 116.295},
	"Wanshouxigong": {Lat: 39.886, Lon: 116.354},
}

// StationCoordinate returns the coordinate of a known station.
func StationCoordinate(station string) (Coordinate, bool) {
	c, ok := stationCoords[station]
	return c, ok
}

// KnownStation reports whether the station is in the coordinate table.
func KnownStation(station string) bool {
	_, ok := stationCoords[station]
	return ok
}
