package handlers

import (
	applog "fouraana/internal/log"
	"fouraana/internal/services"
	"fouraana/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type InquiryHandler struct {
	Inquiries *services.InquiryService
	Listings  *services.ListingService
}

// Submit records an inquiry against a listing. The listing id is carried as a
// soft reference; submission never fails because the listing has vanished.
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("propertyId"))
	if !ok {
		return c.Status(400).SendString("missing propertyId")
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return inquiryErr(c, pid, "Please enter your name.")
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return inquiryErr(c, pid, "Please enter a valid email address.")
	}
	phone, ok := validate.Phone(c.FormValue("phone"))
	if !ok {
		return inquiryErr(c, pid, "Please enter a valid phone number.")
	}
	message, ok := validate.Message(c.FormValue("message"))
	if !ok {
		return inquiryErr(c, pid, "Please enter a message.")
	}

	inq, err := h.Inquiries.Submit(pid, name, email, phone, message)
	if err != nil {
		applog.Error(c, "inquiry.submit.fail", err, map[string]any{"property": pid})
		c.Status(500)
		return render(c, "notfound", fiber.Map{"Message": "Could not send your inquiry. Please try again."})
	}
	applog.Audit(c, "inquiry.submit", map[string]any{"inquiry": inq.ID, "property": pid})
	return c.Redirect("/property/" + pid + "?sent=1")
}

func inquiryErr(c *fiber.Ctx, pid, msg string) error {
	c.Status(fiber.StatusBadRequest)
	return render(c, "notfound", fiber.Map{
		"Message": msg,
		"Back":    "/property/" + pid,
	})
}
