package domain

// OverpassRecord - один элемент из выгрузки Overpass до классификации.
type OverpassRecord struct {
	OSMId   int64
	OSMType string
	Name    string
	Lat     float64
	Lon     float64
	Tags    map[string]string
}

// OverpassLoadResult - результат разбора файла выгрузки.
type OverpassLoadResult struct {
	Records      []*OverpassRecord
	ElementsRead int
	Skipped      int
}
