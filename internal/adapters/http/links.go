package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

const topLevel = "top"

// ListLinks returns the caller's links with their schedule state.
//
//	@Summary		List own links
//	@Description	Returns every link of the caller in display order, including scheduled ones.
//	@Description	folder=top selects links outside any folder; folder=<id> selects one folder.
//	@Tags			links
//	@Produce		json
//	@Param			folder	query		string	false	"Folder id, or top"
//	@Success		200		{array}		domain.LinkView
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/links [get]
func (h *Handler) ListLinks(c *gin.Context) {
	var filter ports.LinkFilter
	if folder, ok := c.GetQuery("folder"); ok {
		filter.Scoped = true
		if folder != topLevel {
			filter.FolderID = &folder
		}
	}

	links, err := h.service.ManageLinks(c.Request.Context(), owner(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// CreateLink adds a link at the end of the caller's page.
//
//	@Summary		Create link
//	@Description	Music links are canonicalized and their blank metadata resolved before saving.
//	@Tags			links
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.CreateLinkRequest	true	"New link"
//	@Success		201		{object}	domain.Link
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/links [post]
func (h *Handler) CreateLink(c *gin.Context) {
	var req domain.CreateLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.service.CreateLink(c.Request.Context(), owner(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateLink edits a link.
//
//	@Summary		Update link
//	@Description	Omitted musicLinks and preview are left unchanged. clearSchedule publishes the link immediately.
//	@Tags			links
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Link id"
//	@Param			request	body		domain.UpdateLinkRequest	true	"Edited fields"
//	@Success		200		{object}	domain.Link
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/links/{id} [put]
func (h *Handler) UpdateLink(c *gin.Context) {
	var req domain.UpdateLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.service.UpdateLink(c.Request.Context(), owner(c), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// UpdateLinkFolder moves a link into a folder or back to the top level.
//
//	@Summary		Move link to folder
//	@Description	Changes only the folder; the link keeps its order key.
//	@Tags			links
//	@Accept			json
//	@Param			id		path	string					true	"Link id"
//	@Param			request	body	domain.MoveLinkRequest	true	"Target folder, null for top level"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/links/{id}/folder [patch]
func (h *Handler) UpdateLinkFolder(c *gin.Context) {
	var req domain.MoveLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.UpdateLinkFolder(c.Request.Context(), owner(c), c.Param("id"), req.FolderID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateLinkOrder applies a reorder batch.
//
//	@Summary		Reorder links
//	@Description	Each owned id gets its position among the owned ids of the batch. Ids the caller
//	@Description	does not own, or that do not exist, are reported in dropped rather than failing the batch.
//	@Tags			links
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.ReorderRequest	true	"Link ids in display order"
//	@Success		200		{object}	domain.OrderResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/links/order [put]
func (h *Handler) UpdateLinkOrder(c *gin.Context) {
	var req domain.ReorderRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateLinkOrder(c.Request.Context(), owner(c), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteLink removes a link.
//
//	@Summary		Delete link
//	@Tags			links
//	@Param			id	path	string	true	"Link id"
//	@Success		204
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/links/{id} [delete]
func (h *Handler) DeleteLink(c *gin.Context) {
	if err := h.service.DeleteLink(c.Request.Context(), owner(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PublicLinks returns what visitors of a page see.
//
//	@Summary		Public page links
//	@Description	Links scheduled in the future are left out. Order is the owner's display order.
//	@Tags			public
//	@Produce		json
//	@Param			owner	path		string	true	"Page owner"
//	@Success		200		{array}		domain.Link
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/public/{owner}/links [get]
func (h *Handler) PublicLinks(c *gin.Context) {
	links, err := h.service.PublicLinks(c.Request.Context(), c.Param("owner"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// -- Folders -----------------------------------------------------------------

// ListFolders returns the caller's folders by position.
//
//	@Summary		List folders
//	@Tags			folders
//	@Produce		json
//	@Success		200	{array}		domain.Folder
//	@Failure		401	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/folders [get]
func (h *Handler) ListFolders(c *gin.Context) {
	folders, err := h.service.ListFolders(c.Request.Context(), owner(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, folders)
}

// CreateFolder adds a folder after the existing ones.
//
//	@Summary		Create folder
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.FolderRequest	true	"Folder name"
//	@Success		201		{object}	domain.Folder
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/folders [post]
func (h *Handler) CreateFolder(c *gin.Context) {
	var req domain.FolderRequest
	if !bindJSON(c, &req) {
		return
	}

	folder, err := h.service.CreateFolder(c.Request.Context(), owner(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// UpdateFolder renames a folder.
//
//	@Summary		Rename folder
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Folder id"
//	@Param			request	body		domain.FolderRequest	true	"New name"
//	@Success		200		{object}	domain.Folder
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/folders/{id} [put]
func (h *Handler) UpdateFolder(c *gin.Context) {
	var req domain.FolderRequest
	if !bindJSON(c, &req) {
		return
	}

	folder, err := h.service.UpdateFolder(c.Request.Context(), owner(c), c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, folder)
}

// DeleteFolder removes a folder. Its links move to the top level.
//
//	@Summary		Delete folder
//	@Tags			folders
//	@Param			id	path	string	true	"Folder id"
//	@Success		204
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/folders/{id} [delete]
func (h *Handler) DeleteFolder(c *gin.Context) {
	if err := h.service.DeleteFolder(c.Request.Context(), owner(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
