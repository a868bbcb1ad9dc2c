package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name  string `json:"name" binding:"required" example:"Ada"`
	Phone string `json:"phone" binding:"required" example:"0121 496 0000"`
}

// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Success      200  {array}   models.Contact
// @Router       /api/contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	list, err := h.services.ListContacts(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadContacts, "contacts_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Create contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  ContactRequest  true  "Contact"
// @Success      201  {object}  models.Contact
// @Failure      400  {object}  ErrorResponse
// @Router       /api/contacts [post]
func (h *Handler) createContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errContactFields})
		return
	}
	created, err := h.services.CreateContact(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		h.respondServiceError(c, err, errMessages{invalid: errContactFields, internal: errSaveContact}, "contact_create_failed")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Delete contact
// @Description  An id that is not a number matches no contact.
// @Tags         contacts
// @Produce      json
// @Param        id  path  int  true  "Contact id"
// @Success      200  {object}  map[string]int
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/contacts/{id} [delete]
func (h *Handler) deleteContact(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": errContactNotFound})
		return
	}
	if err := h.services.DeleteContact(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, errMessages{notFound: errContactNotFound, internal: errDeleteContact},
			"contact_delete_failed", "contact_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
