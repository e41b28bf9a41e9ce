package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"catalog/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates an item. The id and createdDate are assigned by the server.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201  {object} response.Resp{data=itemResp}
// @Header      201  {string} Location "URL of the created item"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "item.delivery.http.Create: invalid request: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "item.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	location := strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + output.Item.ID
	response.Created(c, location, newItemResp(output.Item))
}

// List godoc
// @Summary     List items
// @Description Returns all items. name filters by case-insensitive substring.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       name query string false "Substring the item name must contain"
// @Success     200 {object} response.Resp{data=[]itemResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "item.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Infof(ctx, "item.delivery.http.Detail: id=%s: %v", id, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Replaces name, description and price. id and createdDate never change.
// @Tags        Items
// @Accept      json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "New field values"
// @Success     204
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "item.delivery.http.Update: invalid request: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.l.Infof(ctx, "item.delivery.http.Update: id=%s: %v", req.ID, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Param       id path string true "Item ID"
// @Success     204
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Infof(ctx, "item.delivery.http.Delete: id=%s: %v", id, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
