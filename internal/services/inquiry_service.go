package services

import (
	"strconv"
	"time"

	"fouraana/internal/domain"
	"fouraana/internal/store"
)

// UnknownProperty is rendered for inquiry rows whose propertyId no longer
// resolves to a listing.
const UnknownProperty = "Unknown Property"

type InquiryService struct {
	Store *store.Store
}

func NewInquiryService(s *store.Store) *InquiryService { return &InquiryService{Store: s} }

// Submit appends a new inquiry with a time-based id. The propertyId is taken
// as given; its existence is deliberately not checked.
func (s *InquiryService) Submit(propertyID, name, email, phone, message string) (domain.Inquiry, error) {
	now := time.Now().UnixMilli()
	inq := domain.Inquiry{
		ID:         strconv.FormatInt(now, 10),
		PropertyID: propertyID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
		Timestamp:  now,
	}
	if err := s.Store.AddInquiry(inq); err != nil {
		return domain.Inquiry{}, err
	}
	return inq, nil
}

// InquiryView is an inquiry joined with its listing title for display.
type InquiryView struct {
	domain.Inquiry
	PropertyTitle string
}

// List returns all inquiries, newest first, with titles resolved. A dangling
// propertyId resolves to UnknownProperty.
func (s *InquiryService) List() ([]InquiryView, error) {
	state, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	titles := map[string]string{}
	for _, p := range state.Properties {
		titles[p.ID] = p.Title
	}
	out := make([]InquiryView, 0, len(state.Inquiries))
	for i := len(state.Inquiries) - 1; i >= 0; i-- {
		inq := state.Inquiries[i]
		title, ok := titles[inq.PropertyID]
		if !ok {
			title = UnknownProperty
		}
		out = append(out, InquiryView{Inquiry: inq, PropertyTitle: title})
	}
	return out, nil
}
