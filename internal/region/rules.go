package region

import "github.com/paulmach/orb"

// Rule maps an inclusive lat/lng rectangle to a label.
type Rule struct {
	Label string
	Bound orb.Bound
}

// ruleSet is the ordered region rule list of one country and the label used
// when none of them matches.
type ruleSet struct {
	Rules    []Rule
	Fallback string
}

func box(label string, minLat, maxLat, minLng, maxLng float64) Rule {
	return Rule{
		Label: label,
		Bound: orb.Bound{
			Min: orb.Point{minLng, minLat},
			Max: orb.Point{maxLng, maxLat},
		},
	}
}

// countryRules is scanned top to bottom. Small Central American countries come
// before Mexico, Canada and the United States so that their boxes win the overlaps.
var countryRules = []Rule{
	box("El Salvador", 13.1, 14.5, -90.2, -87.6),
	box("Belize", 15.8, 18.5, -89.3, -87.4),
	box("Guatemala", 13.7, 17.9, -92.3, -88.2),
	box("Honduras", 12.9, 16.5, -89.4, -83.1),
	box("Nicaragua", 10.7, 15.1, -87.7, -82.6),
	box("Costa Rica", 8.0, 11.2, -86.0, -82.5),
	box("Panama", 7.2, 9.7, -83.1, -77.1),

	box("Mexico", 14.5, 22.0, -106.0, -86.7),
	box("Mexico", 22.0, 31.3, -117.2, -97.1),
	box("Mexico", 28.0, 32.7, -117.2, -114.7),

	// Southern Ontario and southern Quebec sit below the 49th parallel.
	box("Canada", 43.3, 46.0, -81.0, -76.0),
	box("Canada", 45.0, 47.0, -76.0, -70.0),

	box("United States", 24.5, 49.0, -125.0, -66.9),
	box("United States", 51.0, 71.5, -170.0, -141.0),
	box("United States", 18.9, 22.3, -160.3, -154.8),

	box("Canada", 41.7, 83.1, -141.0, -52.6),
}

// regionRules holds the finer, per-country rule lists.
var regionRules = map[string]ruleSet{
	"Guatemala": {
		Rules: []Rule{
			box("Guatemala (Capital)", 14.5, 14.75, -90.65, -90.35),
			box("Sacatepéquez", 14.45, 14.75, -90.9, -90.65),
			box("Petén", 16.0, 17.9, -91.5, -89.2),
			box("Alta Verapaz", 15.2, 16.0, -91.2, -89.6),
			box("Huehuetenango", 15.1, 16.0, -92.2, -91.2),
			box("Izabal", 15.0, 16.0, -89.6, -88.2),
			box("Quetzaltenango", 14.6, 15.1, -91.8, -91.3),
			box("Zacapa", 14.7, 15.2, -89.9, -89.3),
			box("Escuintla", 13.9, 14.4, -91.2, -90.5),
		},
		Fallback: "Guatemala (Other)",
	},
	"El Salvador": {
		Rules: []Rule{
			box("San Salvador", 13.6, 13.8, -89.3, -89.1),
			box("La Libertad", 13.4, 13.8, -89.6, -89.3),
			box("Santa Ana", 13.9, 14.4, -89.8, -89.3),
			box("San Miguel", 13.3, 13.7, -88.4, -87.9),
		},
		Fallback: "El Salvador (Other)",
	},
	"Honduras": {
		Rules: []Rule{
			box("Francisco Morazán", 13.9, 14.3, -87.4, -87.0),
			box("Cortés", 15.3, 15.8, -88.2, -87.7),
			box("Atlántida", 15.5, 15.9, -87.7, -86.3),
			box("Choluteca", 13.0, 13.6, -87.4, -86.9),
		},
		Fallback: "Honduras (Other)",
	},
	"Belize": {
		Rules: []Rule{
			box("Belize District", 17.1, 17.8, -88.8, -88.1),
			box("Cayo", 16.8, 17.5, -89.2, -88.6),
		},
		Fallback: "Belize (Other)",
	},
	"Nicaragua": {
		Rules: []Rule{
			box("Managua", 11.9, 12.3, -86.5, -86.0),
			box("León", 12.2, 12.9, -87.4, -86.5),
			box("Granada", 11.7, 12.1, -86.1, -85.7),
		},
		Fallback: "Nicaragua (Other)",
	},
	"Costa Rica": {
		Rules: []Rule{
			box("San José", 9.8, 10.1, -84.3, -83.9),
			box("Guanacaste", 9.8, 11.2, -86.0, -84.8),
			box("Limón", 9.0, 10.9, -83.9, -82.5),
		},
		Fallback: "Costa Rica (Other)",
	},
	"Panama": {
		Rules: []Rule{
			box("Panamá", 8.8, 9.2, -79.7, -79.3),
			box("Colón", 9.0, 9.6, -80.2, -79.4),
			box("Chiriquí", 8.0, 8.9, -83.0, -81.7),
		},
		Fallback: "Panama (Other)",
	},
	"Mexico": {
		Rules: []Rule{
			box("Ciudad de México", 19.2, 19.6, -99.4, -98.9),
			box("Jalisco", 19.5, 22.8, -105.7, -101.5),
			box("Nuevo León", 23.2, 27.8, -101.2, -98.4),
			box("Chiapas", 14.5, 17.9, -94.2, -90.4),
			box("Yucatán Peninsula", 17.8, 21.7, -92.5, -86.7),
			box("Baja California", 28.0, 32.7, -117.2, -112.0),
		},
		Fallback: "Mexico (Other)",
	},
	"United States": {
		Rules: []Rule{
			box("California", 32.5, 42.0, -124.5, -114.1),
			box("Texas", 25.8, 36.5, -106.7, -93.5),
			box("Florida", 24.5, 31.0, -87.6, -80.0),
			box("New York", 40.5, 45.0, -79.8, -71.8),
			box("Alaska", 51.0, 71.5, -170.0, -141.0),
			box("Hawaii", 18.9, 22.3, -160.3, -154.8),
		},
		Fallback: "United States (Other)",
	},
	"Canada": {
		Rules: []Rule{
			box("Alberta", 49.0, 60.0, -120.0, -110.0),
			box("British Columbia", 48.3, 60.0, -139.1, -114.0),
			box("Ontario", 41.7, 56.9, -95.2, -74.3),
			box("Quebec", 45.0, 62.6, -79.8, -57.1),
		},
		Fallback: "Canada (Other)",
	},
}
