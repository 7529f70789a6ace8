package handlers

import (
	"log"

	"vinylswarm/internal/models"
	"vinylswarm/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for record stores and favorites.
type StoreHandler struct {
	service *services.StoreService
	library *services.LibraryService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService, library *services.LibraryService) *StoreHandler {
	return &StoreHandler{
		service: service,
		library: library,
	}
}

// RegisterRoutes registers the store and favorite-store routes with the
// Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/stores")
	storeRoutes.Get("/", h.HandleListStores)
	storeRoutes.Post("/", h.HandleCreateStore)
	storeRoutes.Get("/:id", h.HandleGetStore)
	storeRoutes.Patch("/:id", h.HandleUpdateStore)
	storeRoutes.Delete("/:id", h.HandleDeleteStore)

	favoriteRoutes := router.Group("/record_stores")
	favoriteRoutes.Get("/:user_id", h.HandleGetFavoriteStores)
	favoriteRoutes.Post("/:user_id", h.HandleFavoriteNewStore)
	favoriteRoutes.Put("/:user_id", h.HandleAttachFavoriteStore)
	favoriteRoutes.Delete("/:user_id", h.HandleRemoveFavoriteStore)
}

// HandleListStores returns a page of record stores ordered by store_name.
func (h *StoreHandler) HandleListStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores(filterFromQuery(c))
	if err != nil {
		log.Printf("Error listing record stores: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "fail",
			"message": "Something bad happened while fetching all record stores",
		})
	}

	log.Printf("GET: returning all record_stores")
	return c.JSON(fiber.Map{
		"status":        "success",
		"results":       len(stores),
		"record_stores": stores,
	})
}

// HandleCreateStore adds a record store. A store with the same identifying
// tuple already present is a conflict.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var body models.CreateRecordStoreSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	store, err := h.service.CreateStore(body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("POST: created %s record store", store.StoreName)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":       "success",
		"record_store": store,
	})
}

// HandleGetStore returns a single record store by id.
func (h *StoreHandler) HandleGetStore(c *fiber.Ctx) error {
	id := c.Params("id")
	store, err := h.service.GetStore(id)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("GET: returning %s record store", store.StoreName)
	return c.JSON(fiber.Map{
		"status":       "success",
		"record_store": store,
	})
}

// HandleUpdateStore patch-merges the supplied fields over the stored record
// store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	id := c.Params("id")
	var body models.UpdateRecordStoreSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	store, err := h.service.UpdateStore(id, body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("PATCH: editing %s store details", store.StoreName)
	return c.JSON(fiber.Map{
		"status":       "success",
		"record_store": store,
	})
}

// HandleDeleteStore removes a record store by id.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteStore(id); err != nil {
		return respondError(c, err)
	}

	log.Printf("DELETE: removed record_store: %s", id)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetFavoriteStores returns the user's favorite record stores. No
// favorites gets a bare 200.
func (h *StoreHandler) HandleGetFavoriteStores(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	stores, err := h.library.GetFavoriteStores(userID)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("GET: returning user_id: %s saved record stores", userID)
	if len(stores) == 0 {
		return c.Status(fiber.StatusOK).Send(nil)
	}
	return c.JSON(fiber.Map{
		"status":             "success",
		"results":            len(stores),
		"user_record_stores": stores,
	})
}

// HandleFavoriteNewStore creates a record store and marks it as a favorite
// of the user.
func (h *StoreHandler) HandleFavoriteNewStore(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.CreateRecordStoreSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	link, store, err := h.library.FavoriteNewStore(userID, body)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("POST: adding new record_store: '%s' to user_id: %s favorites", store.StoreName, link.UserID)
	return c.JSON(fiber.Map{
		"status":                  "success",
		"user_id":                 link.UserID,
		"user_favorite_stores_id": link.UserFavoriteStoresID,
		"record_store":            store,
	})
}

// HandleAttachFavoriteStore marks an existing record store as a favorite of
// the user.
func (h *StoreHandler) HandleAttachFavoriteStore(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.StoreRefSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	link, store, err := h.library.AttachFavoriteStore(userID, body.RecordStoreID)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("PUT: adding record_store '%s' to user_id: %s", store.StoreName, link.UserID)
	return c.JSON(fiber.Map{
		"status":                  "success",
		"user_id":                 link.UserID,
		"user_favorite_stores_id": link.UserFavoriteStoresID,
		"record_store":            store,
	})
}

// HandleRemoveFavoriteStore removes one store from the user's favorites.
func (h *StoreHandler) HandleRemoveFavoriteStore(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var body models.StoreRefSchema
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c, err)
	}
	if err := validate.Struct(body); err != nil {
		return respondBadBody(c, err)
	}

	if err := h.library.RemoveFavoriteStore(userID, body.RecordStoreID); err != nil {
		return respondError(c, err)
	}

	log.Printf("DELETE: removed record_store_id '%s' from user_id: %s", body.RecordStoreID, userID)
	return c.SendStatus(fiber.StatusNoContent)
}
