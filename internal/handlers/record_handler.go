package handlers

import (
	"log"

	"vinylswarm/internal/models"
	"vinylswarm/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RecordHandler handles HTTP requests for catalog records and wishlists.
type RecordHandler struct {
	service *services.RecordService
	library *services.LibraryService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(service *services.RecordService, library *services.LibraryService) *RecordHandler {
	return &RecordHandler{
		service: service,
		library: library,
	}
}

// RegisterRoutes registers the record and wishlist routes with the Fiber app.
func (h *RecordHandler) RegisterRoutes(router fiber.Router) {
	recordRoutes := router.Group("/records")
	recordRoutes.Get("/", h.HandleListRecords)
	recordRoutes.Post("/", h.HandleCreateRecord)
	recordRoutes.Get("/:id", h.HandleGetRecord)
	recordRoutes.Patch("/:id", h.HandleUpdateRecord)
	recordRoutes.Delete("/:id", h.HandleDeleteRecord)

	wishlistRoutes := router.Group("/records/wishlist")
	wishlistRoutes.Get("/:user_id", h.HandleGetWishlist)
	wishlistRoutes.Post("/:user_id", h.HandleWishNewRecord)
	wishlistRoutes.Put("/:user_id", h.HandleAttachWishlistRecord)
	wishlistRoutes.Patch("/:user_id", h.HandleRemoveWishlistRecord)
	wishlistRoutes.Delete("/:user_id", h.HandleClearWishlist)
}

// HandleListRecords returns a page of records ordered by artist.
func (h *RecordHandler) HandleListRecords(c *fiber.Ctx) error {
	records, err := h.service.ListRecords(filterFromQuery(c))
	if err != nil {
		log.Printf("Error listing records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "fail",
			"message": "Something bad happened while fetching all records",
		})
	}

	log.Printf("GET: returning all records")
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(records),
		"records": records,
	})
}

// HandleCreateRecord adds a new record to the catalog.
func (h *RecordHandler) HandleCreateRecord(c *fiber.Ctx) error {
	var body models.CreateRecordSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	record, err := h.service.CreateRecord(body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("POST: created record '%s' by '%s'", record.Title, record.Artist)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"record": record,
	})
}

// HandleGetRecord returns a single record by id.
func (h *RecordHandler) HandleGetRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	record, err := h.service.GetRecord(id)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("GET: returning record '%s'", record.Title)
	return c.JSON(fiber.Map{
		"status": "success",
		"record": record,
	})
}

// HandleUpdateRecord patch-merges the supplied fields over the stored
// record.
func (h *RecordHandler) HandleUpdateRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	var body models.UpdateRecordSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	record, err := h.service.UpdateRecord(id, body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("PATCH: editing record '%s' details", record.Title)
	return c.JSON(fiber.Map{
		"status": "success",
		"record": record,
	})
}

// HandleDeleteRecord removes a record by id.
func (h *RecordHandler) HandleDeleteRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteRecord(id); err != nil {
		return respondError(c, err)
	}

	log.Printf("DELETE: removed record: %s", id)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetWishlist returns the records on the user's wishlist. An empty
// wishlist gets a bare 200.
func (h *RecordHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	records, err := h.library.GetWishlist(userID)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("GET: returning user_id: %s wishlist", userID)
	if len(records) == 0 {
		return c.Status(fiber.StatusOK).Send(nil)
	}
	return c.JSON(fiber.Map{
		"status":        "success",
		"results":       len(records),
		"user_wishlist": records,
	})
}

// HandleWishNewRecord creates a new record and puts it on the user's
// wishlist.
func (h *RecordHandler) HandleWishNewRecord(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.CreateRecordSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	entry, record, err := h.library.WishRecord(userID, body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("POST: wish '%s' by '%s' for user: %s", record.Title, record.Artist, entry.UserID)
	return c.JSON(fiber.Map{
		"status":           "success",
		"user_id":          entry.UserID,
		"user_wishlist_id": entry.UserWishlistID,
		"added_at":         entry.AddedAt,
		"record":           record,
	})
}

// HandleAttachWishlistRecord puts an existing record on the user's
// wishlist.
func (h *RecordHandler) HandleAttachWishlistRecord(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.RecordRefSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	entry, record, err := h.library.AttachWishlistRecord(userID, body.RecordID)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("PUT: added '%s' by '%s' to user_id: %s wishlist", record.Title, record.Artist, entry.UserID)
	return c.JSON(fiber.Map{
		"status":           "success",
		"user_id":          entry.UserID,
		"user_wishlist_id": entry.UserWishlistID,
		"added_at":         entry.AddedAt,
		"record":           record,
	})
}

// HandleRemoveWishlistRecord takes one record off the user's wishlist.
func (h *RecordHandler) HandleRemoveWishlistRecord(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.RecordRefSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	if err := h.library.RemoveWishlistRecord(userID, body.RecordID); err != nil {
		return respondError(c, err)
	}

	log.Printf("PATCH: removed record_id %s from user_id: %s wishlist", body.RecordID, userID)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClearWishlist empties the user's wishlist.
func (h *RecordHandler) HandleClearWishlist(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if err := h.library.ClearWishlist(userID); err != nil {
		return respondError(c, err)
	}

	log.Printf("DELETE: cleared user_id: %s wishlist", userID)
	return c.SendStatus(fiber.StatusNoContent)
}
