package vendorresponses

import (
	"database/sql"
	"errors"
	"log"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type saveVendorResponseRequest struct {
	FineID         int64  `json:"fine_id" validate:"required,gt=0"`
	VendorResponse string `json:"vendor_response" validate:"required"`
	Status         string `json:"status"`
}

// ListVendorResponsesHandler returns vendor responses, optionally narrowed to
// one fine via ?fine_id=.
func ListVendorResponsesHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fineID := int64(c.QueryInt("fine_id"))

		responses, err := QueryVendorResponses(db, fineID)
		if err != nil {
			log.Printf("Error querying vendor responses: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(responses)
	}
}

// SaveVendorResponseHandler stores or replaces the vendor's reply to a fine.
func SaveVendorResponseHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req saveVendorResponseRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields: fine_id, vendor_response",
			})
		}
		if req.Status == "" {
			req.Status = models.ResponseStatusSubmitted
		}

		if err := UpsertVendorResponse(db, req.FineID, req.VendorResponse, req.Status); err != nil {
			if errors.Is(err, ErrFineNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fine not found"})
			}
			log.Printf("Error saving vendor response: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Vendor response saved successfully",
		})
	}
}
