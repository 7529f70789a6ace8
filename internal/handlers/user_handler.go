package handlers

import (
	"log"

	"vinylswarm/internal/models"
	"vinylswarm/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users and their record collections.
type UserHandler struct {
	service *services.UserService
	library *services.LibraryService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, library *services.LibraryService) *UserHandler {
	return &UserHandler{
		service: service,
		library: library,
	}
}

// RegisterRoutes registers the user and collection routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Patch("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)

	collectionRoutes := router.Group("/users/records")
	collectionRoutes.Get("/:user_id", h.HandleGetUserRecords)
	collectionRoutes.Post("/:user_id", h.HandleCollectRecord)
	collectionRoutes.Put("/:user_id", h.HandleAttachRecord)
	collectionRoutes.Patch("/:user_id", h.HandleDetachRecord)
	collectionRoutes.Delete("/:user_id", h.HandleClearRecords)
}

// HandleListUsers returns a page of users ordered by user_name.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(filterFromQuery(c))
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "fail",
			"message": "Something bad happened while fetching some users",
		})
	}

	log.Printf("GET: returning users")
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(users),
		"users":   users,
	})
}

// HandleGetUser returns a single user by id.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.service.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("GET: returning details for %s", user.UserName)
	return c.JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

// HandleCreateUser registers a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var body models.CreateUserSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	user, err := h.service.CreateUser(body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("POST: created user %s", user.UserName)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

// HandleUpdateUser patch-merges the supplied fields over the stored user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var body models.UpdateUserSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	user, err := h.service.UpdateUser(id, body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("PATCH: successfully modified %s details", user.UserName)
	return c.JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

// HandleDeleteUser removes a user and their association rows.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteUser(id); err != nil {
		return respondError(c, err)
	}

	log.Printf("DELETE: removed user_id: %s", id)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetUserRecords returns the records in the user's collection. A user
// with no collection gets a bare 200.
func (h *UserHandler) HandleGetUserRecords(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	records, err := h.library.GetUserRecords(userID)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("GET: returning user_id: %s records", userID)
	if len(records) == 0 {
		return c.Status(fiber.StatusOK).Send(nil)
	}
	return c.JSON(fiber.Map{
		"status":       "success",
		"results":      len(records),
		"user_records": records,
	})
}

// HandleCollectRecord creates a new record and adds it to the user's
// collection.
func (h *UserHandler) HandleCollectRecord(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.CreateRecordSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	link, record, err := h.library.CollectRecord(userID, body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("POST: collect '%s' by '%s' for user: %s", record.Title, record.Artist, link.UserID)
	return c.JSON(fiber.Map{
		"status":            "success",
		"records_collected": "1",
		"user_id":           link.UserID,
		"user_record_id":    link.UserRecordID,
		"record":            record,
	})
}

// HandleAttachRecord adds an existing record to the user's collection.
func (h *UserHandler) HandleAttachRecord(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.RecordRefSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	link, record, err := h.library.AttachRecord(userID, body.RecordID)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("PUT: added '%s' by '%s' to user_id: %s collection", record.Title, record.Artist, link.UserID)
	return c.JSON(fiber.Map{
		"status":            "success",
		"records_collected": "1",
		"user_id":           link.UserID,
		"user_record_id":    link.UserRecordID,
		"record":            record,
	})
}

// HandleDetachRecord removes one record from the user's collection.
func (h *UserHandler) HandleDetachRecord(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.RecordRefSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	if err := h.library.DetachRecord(userID, body.RecordID); err != nil {
		return respondError(c, err)
	}

	log.Printf("PATCH: removed record_id %s from user_id: %s collection", body.RecordID, userID)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClearRecords removes the user's whole collection.
func (h *UserHandler) HandleClearRecords(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if err := h.library.ClearRecords(userID); err != nil {
		return respondError(c, err)
	}

	log.Printf("DELETE: removed user_id: %s record collection", userID)
	return c.SendStatus(fiber.StatusNoContent)
}
