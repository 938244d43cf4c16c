package handler

import (
	"io"
	"net/http"

	"balance_gateway/models"
	"balance_gateway/pkg/encoding"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func (h *Handler) Health(c *gin.Context) {
	wrapOkJSON(c, gin.H{"status": "ok"})
}

func (h *Handler) ListFunctions(c *gin.Context) {
	wrapOkJSON(c, models.FunctionList{Functions: h.service.Names()})
}

// Invoke runs one function. Body {"args": [...]} is optional for functions without arguments.
func (h *Handler) Invoke(c *gin.Context) {
	name := c.Param("name")

	var req models.InvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	value, err := h.service.Invoke(c.Request.Context(), name, req.Args)
	if err != nil {
		newErrorResponse(c, statusFor(err), err.Error())
		return
	}

	result, err := encoding.EncodeHex(value)
	if err != nil {
		newErrorResponse(c, http.StatusBadGateway, err.Error())
		return
	}

	wrapOkJSON(c, models.InvokeResponse{
		Function: name,
		Result:   result,
		Value:    value.String(),
	})
}
