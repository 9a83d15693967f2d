package handlers

import "fouraana/internal/domain"

func typeOptions() []string {
	out := []string{"All"}
	for _, t := range domain.PropertyTypes {
		out = append(out, string(t))
	}
	return out
}

func statusOptions() []string {
	out := []string{"All"}
	for _, s := range domain.PropertyStatuses {
		out = append(out, string(s))
	}
	return out
}

// formTypeOptions is the admin form's category list. It omits "Flat", which
// stays a declared enum member but is not offered for new listings.
func formTypeOptions() []string {
	return []string{
		string(domain.TypeLand),
		string(domain.TypeHouse),
		string(domain.TypeApartment),
		string(domain.TypeCommercial),
		string(domain.TypeRoom),
	}
}
