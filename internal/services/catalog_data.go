package services

import (
	rm "tripmate/internal/models/response_models"
)

// Curated reference cities. Durations are typical visit lengths in hours;
// areas are loose neighbourhood clusters used to keep each day geographically
// coherent.
var cityCatalog = map[string]City{
	"paris": {
		Key:         "paris",
		DisplayName: "Paris",
		Country:     "France",
		Places: []rm.PointOfInterest{
			{Name: "Eiffel Tower", Category: rm.CategoryLandmark, Area: "Champ de Mars", DurationHours: 2.5},
			{Name: "Louvre Museum", Category: rm.CategoryMuseum, Area: "Louvre", DurationHours: 3},
			{Name: "Notre-Dame Cathedral", Category: rm.CategoryLandmark, Area: "Île de la Cité", DurationHours: 1.5},
			{Name: "Musée d'Orsay", Category: rm.CategoryMuseum, Area: "Saint-Germain", DurationHours: 2.5},
			{Name: "Jardin du Luxembourg", Category: rm.CategoryPark, Area: "Saint-Germain", DurationHours: 1.5},
			{Name: "Sacré-Cœur Basilica", Category: rm.CategoryViewpoint, Area: "Montmartre", DurationHours: 1.5},
			{Name: "Montmartre Artists' Square", Category: rm.CategoryExperience, Area: "Montmartre", DurationHours: 1.5},
			{Name: "Le Marais Food Walk", Category: rm.CategoryFood, Area: "Le Marais", DurationHours: 2},
			{Name: "Marché Bastille", Category: rm.CategoryMarket, Area: "Le Marais", DurationHours: 1.5},
			{Name: "Seine Evening Cruise", Category: rm.CategoryNightlife, Area: "Île de la Cité", DurationHours: 2},
			{Name: "Champs-Élysées Shopping", Category: rm.CategoryShopping, Area: "Champ de Mars", DurationHours: 2},
			{Name: "Café de Flore", Category: rm.CategoryCafe, Area: "Saint-Germain", DurationHours: 1},
			{Name: "Arc de Triomphe Rooftop", Category: rm.CategoryViewpoint, Area: "Champ de Mars", DurationHours: 1.5},
			{Name: "Latin Quarter Bistro Dinner", Category: rm.CategoryFood, Area: "Saint-Germain", DurationHours: 2},
			{Name: "Canal Saint-Martin Stroll", Category: rm.CategoryPark, Area: "Le Marais", DurationHours: 1.5},
			{Name: "Montmartre Wine Bar", Category: rm.CategoryNightlife, Area: "Montmartre", DurationHours: 2},
		},
	},
	"tokyo": {
		Key:         "tokyo",
		DisplayName: "Tokyo",
		Country:     "Japan",
		Places: []rm.PointOfInterest{
			{Name: "Senso-ji Temple", Category: rm.CategoryLandmark, Area: "Asakusa", DurationHours: 1.5},
			{Name: "Nakamise Market Street", Category: rm.CategoryMarket, Area: "Asakusa", DurationHours: 1},
			{Name: "Tokyo National Museum", Category: rm.CategoryMuseum, Area: "Ueno", DurationHours: 2.5},
			{Name: "Ueno Park", Category: rm.CategoryPark, Area: "Ueno", DurationHours: 1.5},
			{Name: "Shibuya Crossing", Category: rm.CategoryLandmark, Area: "Shibuya", DurationHours: 1},
			{Name: "Meiji Shrine", Category: rm.CategoryLandmark, Area: "Shibuya", DurationHours: 1.5},
			{Name: "Harajuku Takeshita Street", Category: rm.CategoryShopping, Area: "Shibuya", DurationHours: 1.5},
			{Name: "Tsukiji Outer Market Breakfast", Category: rm.CategoryFood, Area: "Ginza", DurationHours: 1.5},
			{Name: "Ginza Department Stores", Category: rm.CategoryShopping, Area: "Ginza", DurationHours: 2},
			{Name: "Shinjuku Golden Gai", Category: rm.CategoryNightlife, Area: "Shinjuku", DurationHours: 2.5},
			{Name: "Tokyo Metropolitan Observatory", Category: rm.CategoryViewpoint, Area: "Shinjuku", DurationHours: 1},
			{Name: "Omoide Yokocho Izakaya Crawl", Category: rm.CategoryFood, Area: "Shinjuku", DurationHours: 2},
			{Name: "teamLab Planets", Category: rm.CategoryExperience, Area: "Ginza", DurationHours: 2},
			{Name: "Kissaten Coffee Stop", Category: rm.CategoryCafe, Area: "Ueno", DurationHours: 1},
			{Name: "Sumida River Walk", Category: rm.CategoryPark, Area: "Asakusa", DurationHours: 1},
			{Name: "Shibuya Sky Deck", Category: rm.CategoryViewpoint, Area: "Shibuya", DurationHours: 1.5},
		},
	},
	"rome": {
		Key:         "rome",
		DisplayName: "Rome",
		Country:     "Italy",
		Places: []rm.PointOfInterest{
			{Name: "Colosseum", Category: rm.CategoryLandmark, Area: "Ancient Rome", DurationHours: 2.5},
			{Name: "Roman Forum", Category: rm.CategoryLandmark, Area: "Ancient Rome", DurationHours: 2},
			{Name: "Vatican Museums", Category: rm.CategoryMuseum, Area: "Vatican", DurationHours: 3.5},
			{Name: "St. Peter's Basilica", Category: rm.CategoryLandmark, Area: "Vatican", DurationHours: 1.5},
			{Name: "Trevi Fountain", Category: rm.CategoryLandmark, Area: "Centro Storico", DurationHours: 0.5},
			{Name: "Pantheon", Category: rm.CategoryLandmark, Area: "Centro Storico", DurationHours: 1},
			{Name: "Villa Borghese Gardens", Category: rm.CategoryPark, Area: "Centro Storico", DurationHours: 2},
			{Name: "Campo de' Fiori Market", Category: rm.CategoryMarket, Area: "Centro Storico", DurationHours: 1},
			{Name: "Trastevere Trattoria Dinner", Category: rm.CategoryFood, Area: "Trastevere", DurationHours: 2},
			{Name: "Trastevere Evening Walk", Category: rm.CategoryNightlife, Area: "Trastevere", DurationHours: 2},
			{Name: "Gianicolo Terrace", Category: rm.CategoryViewpoint, Area: "Trastevere", DurationHours: 1},
			{Name: "Sant'Eustachio Espresso Bar", Category: rm.CategoryCafe, Area: "Centro Storico", DurationHours: 0.5},
			{Name: "Via del Corso Shopping", Category: rm.CategoryShopping, Area: "Centro Storico", DurationHours: 1.5},
			{Name: "Pasta Making Class", Category: rm.CategoryExperience, Area: "Trastevere", DurationHours: 3},
			{Name: "Capitoline Museums", Category: rm.CategoryMuseum, Area: "Ancient Rome", DurationHours: 2},
		},
	},
	"barcelona": {
		Key:         "barcelona",
		DisplayName: "Barcelona",
		Country:     "Spain",
		Places: []rm.PointOfInterest{
			{Name: "Sagrada Família", Category: rm.CategoryLandmark, Area: "Eixample", DurationHours: 2},
			{Name: "Casa Batlló", Category: rm.CategoryLandmark, Area: "Eixample", DurationHours: 1.5},
			{Name: "Park Güell", Category: rm.CategoryPark, Area: "Gràcia", DurationHours: 2},
			{Name: "Gothic Quarter Walk", Category: rm.CategoryExperience, Area: "Ciutat Vella", DurationHours: 2},
			{Name: "Picasso Museum", Category: rm.CategoryMuseum, Area: "Ciutat Vella", DurationHours: 2},
			{Name: "La Boqueria Market", Category: rm.CategoryMarket, Area: "Ciutat Vella", DurationHours: 1.5},
			{Name: "Barceloneta Beachfront", Category: rm.CategoryPark, Area: "Barceloneta", DurationHours: 2},
			{Name: "Tapas Crawl in El Born", Category: rm.CategoryFood, Area: "Ciutat Vella", DurationHours: 2.5},
			{Name: "Bunkers del Carmel Sunset", Category: rm.CategoryViewpoint, Area: "Gràcia", DurationHours: 1.5},
			{Name: "Passeig de Gràcia Boutiques", Category: rm.CategoryShopping, Area: "Eixample", DurationHours: 2},
			{Name: "Gràcia Vermouth Bar", Category: rm.CategoryCafe, Area: "Gràcia", DurationHours: 1},
			{Name: "Flamenco Night", Category: rm.CategoryNightlife, Area: "Ciutat Vella", DurationHours: 2},
			{Name: "Beach Paella Lunch", Category: rm.CategoryFood, Area: "Barceloneta", DurationHours: 1.5},
			{Name: "MNAC Museum", Category: rm.CategoryMuseum, Area: "Eixample", DurationHours: 2.5},
			{Name: "Port Vell Night Promenade", Category: rm.CategoryNightlife, Area: "Barceloneta", DurationHours: 1.5},
		},
	},
	"new-york": {
		Key:         "new-york",
		DisplayName: "New York",
		Country:     "United States",
		Places: []rm.PointOfInterest{
			{Name: "Central Park Loop", Category: rm.CategoryPark, Area: "Midtown", DurationHours: 2},
			{Name: "Metropolitan Museum of Art", Category: rm.CategoryMuseum, Area: "Upper East Side", DurationHours: 3},
			{Name: "Times Square", Category: rm.CategoryLandmark, Area: "Midtown", DurationHours: 1},
			{Name: "Empire State Building Deck", Category: rm.CategoryViewpoint, Area: "Midtown", DurationHours: 1.5},
			{Name: "Brooklyn Bridge Walk", Category: rm.CategoryLandmark, Area: "Lower Manhattan", DurationHours: 1.5},
			{Name: "Statue of Liberty Ferry", Category: rm.CategoryLandmark, Area: "Lower Manhattan", DurationHours: 3},
			{Name: "Chelsea Market", Category: rm.CategoryMarket, Area: "Chelsea", DurationHours: 1.5},
			{Name: "High Line Walk", Category: rm.CategoryPark, Area: "Chelsea", DurationHours: 1.5},
			{Name: "MoMA", Category: rm.CategoryMuseum, Area: "Midtown", DurationHours: 2.5},
			{Name: "Broadway Show", Category: rm.CategoryNightlife, Area: "Midtown", DurationHours: 3},
			{Name: "SoHo Boutique Stroll", Category: rm.CategoryShopping, Area: "Lower Manhattan", DurationHours: 2},
			{Name: "Greenwich Village Café", Category: rm.CategoryCafe, Area: "Chelsea", DurationHours: 1},
			{Name: "Katz's Delicatessen", Category: rm.CategoryFood, Area: "Lower Manhattan", DurationHours: 1},
			{Name: "Rooftop Bar in Chelsea", Category: rm.CategoryNightlife, Area: "Chelsea", DurationHours: 2},
			{Name: "Fifth Avenue Window Shopping", Category: rm.CategoryShopping, Area: "Upper East Side", DurationHours: 1.5},
			{Name: "Food Cart Lunch Tour", Category: rm.CategoryExperience, Area: "Midtown", DurationHours: 1.5},
		},
	},
	"lisbon": {
		Key:         "lisbon",
		DisplayName: "Lisbon",
		Country:     "Portugal",
		Places: []rm.PointOfInterest{
			{Name: "Belém Tower", Category: rm.CategoryLandmark, Area: "Belém", DurationHours: 1.5},
			{Name: "Jerónimos Monastery", Category: rm.CategoryLandmark, Area: "Belém", DurationHours: 2},
			{Name: "Pastéis de Belém Bakery", Category: rm.CategoryCafe, Area: "Belém", DurationHours: 1},
			{Name: "Alfama Tram 28 Ride", Category: rm.CategoryExperience, Area: "Alfama", DurationHours: 1.5},
			{Name: "São Jorge Castle", Category: rm.CategoryLandmark, Area: "Alfama", DurationHours: 2},
			{Name: "Miradouro da Senhora do Monte", Category: rm.CategoryViewpoint, Area: "Alfama", DurationHours: 1},
			{Name: "Fado House Evening", Category: rm.CategoryNightlife, Area: "Alfama", DurationHours: 2.5},
			{Name: "Time Out Market", Category: rm.CategoryMarket, Area: "Baixa", DurationHours: 1.5},
			{Name: "MAAT Museum", Category: rm.CategoryMuseum, Area: "Belém", DurationHours: 2},
			{Name: "Baixa Pombalina Walk", Category: rm.CategoryExperience, Area: "Baixa", DurationHours: 1.5},
			{Name: "Eduardo VII Park", Category: rm.CategoryPark, Area: "Baixa", DurationHours: 1},
			{Name: "Chiado Bookshops & Boutiques", Category: rm.CategoryShopping, Area: "Baixa", DurationHours: 1.5},
			{Name: "Bairro Alto Petiscos Dinner", Category: rm.CategoryFood, Area: "Bairro Alto", DurationHours: 2},
			{Name: "Bairro Alto Bar Hop", Category: rm.CategoryNightlife, Area: "Bairro Alto", DurationHours: 2},
			{Name: "Miradouro de São Pedro", Category: rm.CategoryViewpoint, Area: "Bairro Alto", DurationHours: 0.5},
		},
	},
}

// Destination aliases, checked after normalization (lowercase, punctuation
// stripped, whitespace collapsed).
var cityAliases = map[string]string{
	"paris":         "paris",
	"paris france":  "paris",
	"tokyo":         "tokyo",
	"tokyo japan":   "tokyo",
	"rome":          "rome",
	"roma":          "rome",
	"rome italy":    "rome",
	"barcelona":     "barcelona",
	"bcn":           "barcelona",
	"new york":      "new-york",
	"new york city": "new-york",
	"nyc":           "new-york",
	"manhattan":     "new-york",
	"lisbon":        "lisbon",
	"lisboa":        "lisbon",
}

// fallbackPlaceTemplate is instantiated with the raw destination name when no
// alias matches; it spans every category so the builder's cascade always has
// something to draw from.
var fallbackPlaceTemplate = []rm.PointOfInterest{
	{Name: "%s Historic Center Walk", Category: rm.CategoryLandmark, Area: "Old Town", DurationHours: 2},
	{Name: "%s Heritage Museum", Category: rm.CategoryMuseum, Area: "Old Town", DurationHours: 2},
	{Name: "%s Cathedral Square", Category: rm.CategoryLandmark, Area: "Old Town", DurationHours: 1},
	{Name: "%s Central Market", Category: rm.CategoryMarket, Area: "City Center", DurationHours: 1.5},
	{Name: "%s City Park", Category: rm.CategoryPark, Area: "City Center", DurationHours: 1.5},
	{Name: "%s Art Gallery", Category: rm.CategoryMuseum, Area: "City Center", DurationHours: 2},
	{Name: "%s Old Quarter Café", Category: rm.CategoryCafe, Area: "Old Town", DurationHours: 1},
	{Name: "%s Local Food Tour", Category: rm.CategoryFood, Area: "City Center", DurationHours: 2.5},
	{Name: "%s Riverside Promenade", Category: rm.CategoryPark, Area: "Riverside", DurationHours: 1.5},
	{Name: "%s Panorama Viewpoint", Category: rm.CategoryViewpoint, Area: "Riverside", DurationHours: 1},
	{Name: "%s Night Market", Category: rm.CategoryNightlife, Area: "Riverside", DurationHours: 2},
	{Name: "%s Artisan Shops", Category: rm.CategoryShopping, Area: "Old Town", DurationHours: 1.5},
	{Name: "%s Cooking Workshop", Category: rm.CategoryExperience, Area: "City Center", DurationHours: 3},
	{Name: "%s Evening Bistro", Category: rm.CategoryFood, Area: "Riverside", DurationHours: 2},
	{Name: "%s Live Music Bar", Category: rm.CategoryNightlife, Area: "City Center", DurationHours: 2},
}
