package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fouraana/internal/domain"
	applog "fouraana/internal/log"
	"fouraana/internal/services"
	"fouraana/internal/store"
	"fouraana/internal/validate"
)

type AdminHandler struct {
	Store     *store.Store
	Listings  *services.ListingService
	Inquiries *services.InquiryService
	Auth      *services.AuthService
}

// Dashboard renders the console with one of three tabs: properties (default),
// inquiries, settings.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	tab := c.Query("tab", "properties")
	switch tab {
	case "properties", "inquiries", "settings":
	default:
		tab = "properties"
	}

	state, err := h.Store.Load()
	if err != nil {
		return renderLoadError(c, "admin.load.fail", err)
	}
	inqs, err := h.Inquiries.List()
	if err != nil {
		return renderLoadError(c, "admin.load.fail", err)
	}

	return render(c, "admin", fiber.Map{
		"Tab":           tab,
		"Properties":    state.Properties,
		"Inquiries":     inqs,
		"Settings":      state.Settings,
		"PropertyCount": len(state.Properties),
		"InquiryCount":  len(state.Inquiries),
	})
}

func (h *AdminHandler) NewForm(c *fiber.Ctx) error {
	p := domain.Property{
		Type:            domain.TypeLand,
		Status:          domain.StatusForSale,
		IsAvailable:     true,
		Location:        domain.Location{Province: "Bagmati", District: "Kathmandu"},
		ContactName:     "sumanbasnet2030",
		ContactPhone:    "984XXXXXXX",
		ContactWhatsApp: "984XXXXXXX",
	}
	return render(c, "admin_form", fiber.Map{
		"Property": p,
		"IsNew":    true,
		"Types":    formTypeOptions(),
		"Statuses": statusOptions()[1:],
	})
}

func (h *AdminHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(404)
		return render(c, "notfound", fiber.Map{"Message": "Listing not found."})
	}
	p, found, err := h.Listings.Get(id)
	if err != nil {
		return renderLoadError(c, "admin.edit.fail", err)
	}
	if !found {
		c.Status(404)
		return render(c, "notfound", fiber.Map{"Message": "Listing not found."})
	}
	return render(c, "admin_form", fiber.Map{
		"Property": p,
		"IsNew":    false,
		"Types":    formTypeOptions(),
		"Statuses": statusOptions()[1:],
	})
}

// SaveProperty creates or updates a listing from the admin form. A blank id
// means create: the server assigns a uuid and the creation timestamp.
func (h *AdminHandler) SaveProperty(c *fiber.Ctx) error {
	p, msg := h.parsePropertyForm(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "property", "reason": msg})
		c.Status(fiber.StatusBadRequest)
		return render(c, "notfound", fiber.Map{"Message": msg, "Back": "/admin"})
	}

	isNew := p.ID == ""
	if isNew {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now().UnixMilli()
		if err := h.Store.AddProperty(p); err != nil {
			applog.Error(c, "admin.property.add.fail", err, nil)
			return renderLoadError(c, "admin.property.add.fail", err)
		}
		applog.Audit(c, "admin.property.add", map[string]any{"property": p.ID})
	} else {
		if err := h.Store.UpdateProperty(p); err != nil {
			applog.Error(c, "admin.property.update.fail", err, map[string]any{"property": p.ID})
			return renderLoadError(c, "admin.property.update.fail", err)
		}
		applog.Audit(c, "admin.property.update", map[string]any{"property": p.ID})
	}
	return c.Redirect("/admin")
}

func (h *AdminHandler) DeleteProperty(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Store.DeleteProperty(id); err != nil {
		applog.Error(c, "admin.property.delete.fail", err, map[string]any{"property": id})
		return renderLoadError(c, "admin.property.delete.fail", err)
	}
	applog.Audit(c, "admin.property.delete", map[string]any{"property": id})
	return c.Redirect("/admin")
}

// SaveSettings replaces the settings record wholesale with the posted form.
func (h *AdminHandler) SaveSettings(c *fiber.Ctx) error {
	settings := domain.SiteSettings{
		HomepageTitle:    strings.TrimSpace(c.FormValue("homepageTitle")),
		HomepageSubtitle: strings.TrimSpace(c.FormValue("homepageSubtitle")),
		AboutText:        strings.TrimSpace(c.FormValue("aboutText")),
		ContactEmail:     strings.TrimSpace(c.FormValue("contactEmail")),
		ContactPhone:     strings.TrimSpace(c.FormValue("contactPhone")),
		MetaDescription:  strings.TrimSpace(c.FormValue("metaDescription")),
	}
	if err := h.Store.UpdateSettings(settings); err != nil {
		applog.Error(c, "admin.settings.save.fail", err, nil)
		return renderLoadError(c, "admin.settings.save.fail", err)
	}
	applog.Audit(c, "admin.settings.save", nil)
	return c.Redirect("/admin?tab=settings")
}

// parsePropertyForm validates the listing form and returns either a property
// or a user-facing message describing the first rejected field.
func (h *AdminHandler) parsePropertyForm(c *fiber.Ctx) (domain.Property, string) {
	var p domain.Property

	if raw := strings.TrimSpace(c.FormValue("id")); raw != "" {
		id, ok := validate.ID(raw)
		if !ok {
			return p, "Invalid listing id."
		}
		p.ID = id
		if created, err := strconv.ParseInt(c.FormValue("createdAt"), 10, 64); err == nil {
			p.CreatedAt = created
		}
	}

	title, ok := validate.Name(c.FormValue("title"))
	if !ok {
		return p, "Please enter a listing title."
	}
	p.Title = title

	typ := strings.TrimSpace(c.FormValue("type"))
	if !domain.ValidPropertyType(typ) {
		return p, "Invalid category."
	}
	p.Type = domain.PropertyType(typ)

	status := strings.TrimSpace(c.FormValue("status"))
	if !domain.ValidPropertyStatus(status) {
		return p, "Invalid status."
	}
	p.Status = domain.PropertyStatus(status)

	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return p, "Please enter a valid price."
	}
	p.Price = price

	area, ok := validate.Area(c.FormValue("area"))
	if !ok {
		return p, "Please enter a valid area."
	}
	p.Area = area
	if raw := strings.TrimSpace(c.FormValue("areaSqFt")); raw != "" {
		sqft, ok := validate.Area(raw)
		if !ok {
			return p, "Please enter a valid area in sq.ft."
		}
		p.AreaSqFt = &sqft
	}

	p.Location = domain.Location{
		Province: strings.TrimSpace(c.FormValue("province")),
		District: strings.TrimSpace(c.FormValue("district")),
		City:     strings.TrimSpace(c.FormValue("city")),
	}
	if p.Location.District == "" || p.Location.City == "" {
		return p, "Please enter the listing location."
	}
	latRaw, lngRaw := strings.TrimSpace(c.FormValue("lat")), strings.TrimSpace(c.FormValue("lng"))
	if latRaw != "" && lngRaw != "" {
		lat, errLat := strconv.ParseFloat(latRaw, 64)
		lng, errLng := strconv.ParseFloat(lngRaw, 64)
		if errLat != nil || errLng != nil {
			return p, "Invalid coordinates."
		}
		p.Location.Coordinates = &domain.Coordinates{Lat: lat, Lng: lng}
	}

	for i := 1; i <= domain.MaxImages; i++ {
		if u := strings.TrimSpace(c.FormValue(fmt.Sprintf("image%d", i))); u != "" {
			p.Images = append(p.Images, u)
		}
	}
	p.Normalize()

	p.Description = strings.TrimSpace(c.FormValue("description"))
	if p.Description == "" {
		return p, "Please enter a description."
	}

	p.ContactName = strings.TrimSpace(c.FormValue("contactName"))
	p.ContactPhone = strings.TrimSpace(c.FormValue("contactPhone"))
	p.ContactWhatsApp = strings.TrimSpace(c.FormValue("contactWhatsApp"))

	p.IsFeatured = c.FormValue("isFeatured") == "on"
	p.IsAvailable = c.FormValue("isAvailable") == "on"
	return p, ""
}
