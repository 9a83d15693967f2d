package handlers

import (
	"fouraana/internal/insight"
	"fouraana/internal/services"
	"fouraana/internal/store"
)

type Deps struct {
	PageHandler     *PageHandler
	ListingHandler  *ListingHandler
	PropertyHandler *PropertyHandler
	InquiryHandler  *InquiryHandler
	FavoriteHandler *FavoriteHandler
	InsightHandler  *InsightHandler
	AdminHandler    *AdminHandler
}

func NewDeps(st *store.Store, auth *services.AuthService, gen insight.Generator) *Deps {
	listings := services.NewListingService(st)
	inquiries := services.NewInquiryService(st)

	return &Deps{
		PageHandler:     &PageHandler{Listings: listings},
		ListingHandler:  &ListingHandler{Listings: listings},
		PropertyHandler: &PropertyHandler{Listings: listings},
		InquiryHandler:  &InquiryHandler{Inquiries: inquiries, Listings: listings},
		FavoriteHandler: &FavoriteHandler{Listings: listings},
		InsightHandler:  &InsightHandler{Listings: listings, Gen: gen},
		AdminHandler:    &AdminHandler{Store: st, Listings: listings, Inquiries: inquiries, Auth: auth},
	}
}
