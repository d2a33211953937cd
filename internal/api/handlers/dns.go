package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minidns-io/minidns/internal/api/models"
	"github.com/minidns-io/minidns/internal/engine"
	"github.com/minidns-io/minidns/internal/store"
)

// AddRecord creates a new DNS record.
// @Summary Create a DNS record
// @Description Creates an A or CNAME record, enforcing CNAME exclusivity and duplicate-A rules
// @Tags dns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param record body models.AddRecordRequest true "Record to create"
// @Success 201 {object} models.RecordResponse
// @Failure 400 {object} models.ErrorResponse "Invalid record type or CNAME conflict"
// @Failure 409 {object} models.ErrorResponse "Duplicate A record"
// @Failure 422 {object} models.ErrorResponse "Invalid hostname or value"
// @Router /dns [post]
func (h *Handler) AddRecord(c *gin.Context) {
	var req models.AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	rec, err := h.engine.AddRecord(c.Request.Context(), req.Hostname, req.Type, req.Value)
	if err != nil {
		h.respondEngineError(c, err, true)
		return
	}

	c.JSON(http.StatusCreated, recordResponse(rec))
}

// ListRecords returns all records at a hostname without CNAME chasing.
// @Summary List records at a hostname
// @Description Returns every A and CNAME record at exactly the given hostname
// @Tags dns
// @Produce json
// @Security ApiKeyAuth
// @Param hostname path string true "Hostname"
// @Success 200 {array} models.RecordResponse
// @Failure 404 {object} models.ErrorResponse "Hostname has no records"
// @Failure 422 {object} models.ErrorResponse "Invalid hostname"
// @Router /dns/{hostname}/records [get]
func (h *Handler) ListRecords(c *gin.Context) {
	hostname := c.Param("hostname")

	records, err := h.engine.ListRecords(c.Request.Context(), hostname)
	if err != nil {
		h.respondEngineError(c, err, false)
		return
	}

	resp := make([]models.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, recordResponse(rec))
	}
	c.JSON(http.StatusOK, resp)
}

// ResolveHostname resolves a hostname to its IPv4 addresses.
// @Summary Resolve a hostname
// @Description Follows CNAME links until A records are found, with cycle detection
// @Tags dns
// @Produce json
// @Security ApiKeyAuth
// @Param hostname path string true "Hostname"
// @Success 200 {object} models.ResolveResponse
// @Failure 400 {object} models.ErrorResponse "Circular CNAME reference"
// @Failure 404 {object} models.ErrorResponse "Hostname (or chain target) has no records"
// @Failure 422 {object} models.ErrorResponse "Invalid hostname"
// @Router /dns/{hostname} [get]
func (h *Handler) ResolveHostname(c *gin.Context) {
	hostname := c.Param("hostname")

	res, err := h.engine.Resolve(c.Request.Context(), hostname)
	if err != nil {
		h.respondEngineError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, models.ResolveResponse{
		Hostname:  res.Hostname,
		Addresses: res.Addresses,
	})
}

// DeleteRecord deletes an exact (hostname, type, value) record.
// @Summary Delete a DNS record
// @Description Deletes the record matching hostname, type, and value exactly
// @Tags dns
// @Produce json
// @Security ApiKeyAuth
// @Param hostname path string true "Hostname"
// @Param type query string true "Record type (A or CNAME)"
// @Param value query string true "Record value"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse "Record not found"
// @Failure 422 {object} models.ErrorResponse "Invalid hostname, type, or value"
// @Router /dns/{hostname} [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	hostname := c.Param("hostname")
	recordType := c.Query("type")
	value := c.Query("value")

	if err := h.engine.DeleteRecord(c.Request.Context(), hostname, recordType, value); err != nil {
		h.respondEngineError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}

// respondEngineError maps engine errors onto HTTP status codes.
//
// Validation failures are 422, except an unsupported record type on create,
// which is 400. Conflict and cycle errors are 400, duplicates 409, misses
// 404, and store outages 503.
func (h *Handler) respondEngineError(c *gin.Context, err error, create bool) {
	var (
		verr *engine.ValidationError
		cerr *engine.ConflictError
		nerr *engine.NotFoundError
	)

	switch {
	case errors.As(err, &verr):
		status := http.StatusUnprocessableEntity
		if create && verr.Field == engine.FieldType {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse{Error: verr.Error()})
	case errors.As(err, &cerr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: cerr.Reason})
	case errors.Is(err, engine.ErrDuplicateRecord):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, engine.ErrCircularReference):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: nerr.Error()})
	case errors.Is(err, store.ErrUnavailable):
		h.logError("record store unavailable", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "record store unavailable"})
	default:
		h.logError("unexpected error handling request", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
	}
}

func recordResponse(rec store.Record) models.RecordResponse {
	return models.RecordResponse{
		ID:        rec.ID,
		Hostname:  rec.Hostname,
		Type:      rec.Type,
		Value:     rec.Value,
		CreatedAt: rec.CreatedAt,
	}
}
