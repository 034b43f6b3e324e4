package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "items-service/pkg/errors"
)

// processItemID parses the item_id path segment. It must be a positive
// base-10 integer; anything else is a client-input error.
func (h *handler) processItemID(c *gin.Context) (int64, error) {
	raw := c.Param("item_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(400, "item_id must be a positive integer")
	}
	return id, nil
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processItemID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}
