package domain

// PlaceholderImage is substituted whenever a listing is persisted with no
// usable image URLs.
const PlaceholderImage = "https://via.placeholder.com/800x600?text=No+Image"

// MaxImages caps the gallery size per listing.
const MaxImages = 5

type PropertyType string

const (
	TypeLand       PropertyType = "Land"
	TypeHouse      PropertyType = "House"
	TypeApartment  PropertyType = "Apartment"
	TypeFlat       PropertyType = "Flat"
	TypeCommercial PropertyType = "Commercial"
	TypeRoom       PropertyType = "Room"
)

type PropertyStatus string

const (
	StatusForSale PropertyStatus = "For Sale"
	StatusForRent PropertyStatus = "For Rent"
)

// PropertyTypes lists the declared categories in display order. "Flat" is
// declared but omitted from the admin form's category list; it remains
// accepted anywhere a type is validated.
var PropertyTypes = []PropertyType{TypeLand, TypeHouse, TypeApartment, TypeFlat, TypeCommercial, TypeRoom}

var PropertyStatuses = []PropertyStatus{StatusForSale, StatusForRent}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Province    string       `json:"province"`
	District    string       `json:"district"`
	City        string       `json:"city"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Property struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Type            PropertyType   `json:"type"`
	Price           int64          `json:"price"` // NPR
	Area            float64        `json:"area"`  // Aana
	AreaSqFt        *float64       `json:"areaSqFt,omitempty"`
	Location        Location       `json:"location"`
	Images          []string       `json:"images"`
	Description     string         `json:"description"`
	Status          PropertyStatus `json:"status"`
	IsFeatured      bool           `json:"isFeatured"`
	IsAvailable     bool           `json:"isAvailable"`
	ContactName     string         `json:"contactName"`
	ContactPhone    string         `json:"contactPhone"`
	ContactWhatsApp string         `json:"contactWhatsApp"`
	CreatedAt       int64          `json:"createdAt"` // unix milliseconds
}

// Normalize enforces the image invariant: at least one entry, at most
// MaxImages, no blank URLs.
func (p *Property) Normalize() {
	imgs := p.Images[:0]
	for _, u := range p.Images {
		if u != "" {
			imgs = append(imgs, u)
		}
	}
	if len(imgs) == 0 {
		imgs = []string{PlaceholderImage}
	}
	if len(imgs) > MaxImages {
		imgs = imgs[:MaxImages]
	}
	p.Images = imgs
}

func ValidPropertyType(s string) bool {
	for _, t := range PropertyTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

func ValidPropertyStatus(s string) bool {
	for _, t := range PropertyStatuses {
		if string(t) == s {
			return true
		}
	}
	return false
}
