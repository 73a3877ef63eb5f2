package distance

import "math"

// Earth radius in kilometers
const earthRadius = 6371.0

// Point is a named location on the globe.
type Point struct {
	Name string  `yaml:"name" json:"name"`
	Lat  float64 `yaml:"lat" json:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `yaml:"lng" json:"lng" validate:"gte=-180,lte=180"`
}

// FromPoints builds a symmetric Matrix of great-circle distances in kilometers.
func FromPoints(points []Point) (*Matrix, error) {
	table := make([][]float64, len(points))
	for i := range table {
		table[i] = make([]float64, len(points))
		for j := range table[i] {
			if i != j {
				table[i][j] = Haversine(points[i], points[j])
			}
		}
	}

	m, err := New(table)
	if err != nil {
		return nil, err
	}
	m.names = make([]string, len(points))
	for i, p := range points {
		m.names[i] = p.Name
	}
	return m, nil
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(p1, p2 Point) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180

	dlat := lat2 - lat1
	dlng := lng2 - lng1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}
