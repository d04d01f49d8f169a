// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pratyay/profile-service/internal/api/dto"
	"github.com/pratyay/profile-service/internal/api/middleware"
	"github.com/pratyay/profile-service/internal/core/docdb"
	domainerrors "github.com/pratyay/profile-service/internal/domain/errors"
	"github.com/pratyay/profile-service/internal/domain/models"
	"github.com/pratyay/profile-service/internal/services/access"
)

// MaxBodyBytes caps request bodies at the MongoDB document size limit.
const MaxBodyBytes = 16 << 20

// DocumentsHandler serves the generic document endpoints. Path-addressed and
// header-addressed routes share the same implementation.
type DocumentsHandler struct {
	repository docdb.DocumentRepository
	authorizer access.Authorizer
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(repository docdb.DocumentRepository, authorizer access.Authorizer) *DocumentsHandler {
	return &DocumentsHandler{
		repository: repository,
		authorizer: authorizer,
	}
}

// Insert handles POST /message
// @Summary Insert a document
// @Description Inserts the request body as a new document. Requires the admin password.
// @Tags Documents
// @Accept json
// @Produce json
// @Param database query string true "Database name"
// @Param collection query string true "Collection name"
// @Param X-Password header string true "Admin password"
// @Param document body object true "Document to insert"
// @Success 201 {object} dto.InsertResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid name or body"
// @Failure 403 {object} dto.ErrorResponse "Invalid admin password"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /message [post]
func (h *DocumentsHandler) Insert(c *gin.Context) {
	h.insert(c, dto.DocumentTarget{
		Database:   c.Query(dto.ParamDatabase),
		Collection: c.Query(dto.ParamCollection),
	})
}

// Find handles GET /data
// @Summary Find documents
// @Description Returns all documents matching the JSON filter q, capped at limit.
// @Tags Documents
// @Produce json
// @Param database query string true "Database name"
// @Param collection query string true "Collection name"
// @Param q query string false "JSON object filter"
// @Param limit query int false "Maximum number of documents"
// @Success 200 {array} object
// @Failure 400 {object} dto.ErrorResponse "Invalid name, filter or limit"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /data [get]
func (h *DocumentsHandler) Find(c *gin.Context) {
	h.find(c,
		dto.DocumentTarget{
			Database:   c.Query(dto.ParamDatabase),
			Collection: c.Query(dto.ParamCollection),
		},
		dto.FindRequest{
			Query: c.Query(dto.ParamQuery),
			Limit: c.Query(dto.ParamLimit),
		},
	)
}

// Get handles GET /data/{database}/{collection}/{id}
// @Summary Get a document
// @Tags Documents
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param id path string true "Document ID (24 hex characters)"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /data/{database}/{collection}/{id} [get]
func (h *DocumentsHandler) Get(c *gin.Context) {
	h.get(c, pathTarget(c))
}

// Update handles PUT /data/{database}/{collection}/{id}
// @Summary Update a document
// @Description Sets the fields of the request body on the document. Requires the admin password.
// @Tags Documents
// @Accept json
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param id path string true "Document ID (24 hex characters)"
// @Param X-Password header string true "Admin password"
// @Param fields body object true "Fields to set"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or body"
// @Failure 403 {object} dto.ErrorResponse "Invalid admin password"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /data/{database}/{collection}/{id} [put]
func (h *DocumentsHandler) Update(c *gin.Context) {
	h.update(c, pathTarget(c))
}

// Delete handles DELETE /data/{database}/{collection}/{id}
// @Summary Delete a document
// @Tags Documents
// @Produce json
// @Param database path string true "Database name"
// @Param collection path string true "Collection name"
// @Param id path string true "Document ID (24 hex characters)"
// @Param X-Password header string true "Admin password"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 403 {object} dto.ErrorResponse "Invalid admin password"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /data/{database}/{collection}/{id} [delete]
func (h *DocumentsHandler) Delete(c *gin.Context) {
	h.delete(c, pathTarget(c))
}

// InsertByHeaders handles POST /data/headers
// @Summary Insert a document (header addressed)
// @Tags Documents (headers)
// @Accept json
// @Produce json
// @Param X-Database header string true "Database name"
// @Param X-Collection header string true "Collection name"
// @Param X-Password header string true "Admin password"
// @Param document body object true "Document to insert"
// @Success 201 {object} dto.InsertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /data/headers [post]
func (h *DocumentsHandler) InsertByHeaders(c *gin.Context) {
	h.insert(c, headerTarget(c))
}

// FindByHeaders handles GET /data/headers
// @Summary Find documents (header addressed)
// @Tags Documents (headers)
// @Produce json
// @Param X-Database header string true "Database name"
// @Param X-Collection header string true "Collection name"
// @Param X-Query header string false "JSON object filter"
// @Param X-Limit header int false "Maximum number of documents"
// @Success 200 {array} object
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /data/headers [get]
func (h *DocumentsHandler) FindByHeaders(c *gin.Context) {
	h.find(c, headerTarget(c), dto.FindRequest{
		Query: c.GetHeader(dto.HeaderQuery),
		Limit: c.GetHeader(dto.HeaderLimit),
	})
}

// GetByHeaders handles GET /data/headers/document
// @Summary Get a document (header addressed)
// @Tags Documents (headers)
// @Produce json
// @Param X-Database header string true "Database name"
// @Param X-Collection header string true "Collection name"
// @Param X-Id header string true "Document ID"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /data/headers/document [get]
func (h *DocumentsHandler) GetByHeaders(c *gin.Context) {
	h.get(c, headerTarget(c))
}

// UpdateByHeaders handles PUT /data/headers/document
// @Summary Update a document (header addressed)
// @Tags Documents (headers)
// @Accept json
// @Produce json
// @Param X-Database header string true "Database name"
// @Param X-Collection header string true "Collection name"
// @Param X-Id header string true "Document ID"
// @Param X-Password header string true "Admin password"
// @Param fields body object true "Fields to set"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /data/headers/document [put]
func (h *DocumentsHandler) UpdateByHeaders(c *gin.Context) {
	h.update(c, headerTarget(c))
}

// DeleteByHeaders handles DELETE /data/headers/document
// @Summary Delete a document (header addressed)
// @Tags Documents (headers)
// @Produce json
// @Param X-Database header string true "Database name"
// @Param X-Collection header string true "Collection name"
// @Param X-Id header string true "Document ID"
// @Param X-Password header string true "Admin password"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /data/headers/document [delete]
func (h *DocumentsHandler) DeleteByHeaders(c *gin.Context) {
	h.delete(c, headerTarget(c))
}

func pathTarget(c *gin.Context) dto.DocumentTarget {
	return dto.DocumentTarget{
		Database:   c.Param(dto.ParamDatabase),
		Collection: c.Param(dto.ParamCollection),
		ID:         c.Param(dto.ParamID),
	}
}

func headerTarget(c *gin.Context) dto.DocumentTarget {
	return dto.DocumentTarget{
		Database:   c.GetHeader(dto.HeaderDatabase),
		Collection: c.GetHeader(dto.HeaderCollection),
		ID:         c.GetHeader(dto.HeaderID),
	}
}

func readBody(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domainerrors.NewBadRequestError("request body too large", err.Error())
		}
		return nil, domainerrors.NewBadRequestError("failed to read request body", err.Error())
	}
	return body, nil
}

func (h *DocumentsHandler) insert(c *gin.Context, target dto.DocumentTarget) {
	ctx := c.Request.Context()

	if err := access.ValidateTarget(target.Database, target.Collection); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := h.authorizer.Authorize(ctx, c.GetHeader(dto.HeaderPassword)); err != nil {
		middleware.HandleError(c, err)
		return
	}

	body, err := readBody(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	doc, err := access.ParseBody(body)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	id, err := h.repository.Insert(ctx, target.Database, target.Collection, doc)
	if err != nil {
		h.storeError(c, "insert", target, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InsertResponse{InsertedID: models.FormatID(id)})
}

func (h *DocumentsHandler) find(c *gin.Context, target dto.DocumentTarget, req dto.FindRequest) {
	if err := access.ValidateTarget(target.Database, target.Collection); err != nil {
		middleware.HandleError(c, err)
		return
	}
	filter, err := access.ParseQuery(req.Query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	limit, err := access.ParseLimit(req.Limit)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	docs, err := h.repository.FindMany(c.Request.Context(), target.Database, target.Collection, filter, limit)
	if err != nil {
		h.storeError(c, "find", target, err)
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}

	c.JSON(http.StatusOK, docs)
}

func (h *DocumentsHandler) get(c *gin.Context, target dto.DocumentTarget) {
	if err := access.ValidateTarget(target.Database, target.Collection); err != nil {
		middleware.HandleError(c, err)
		return
	}
	id, err := access.ParseID(target.ID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	doc, err := h.repository.FindOne(c.Request.Context(), target.Database, target.Collection, models.IDFilter(id))
	if err != nil {
		h.storeError(c, "fetch", target, err)
		return
	}
	if doc == nil {
		middleware.HandleError(c, domainerrors.NewNotFoundError("document", target.ID))
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *DocumentsHandler) update(c *gin.Context, target dto.DocumentTarget) {
	ctx := c.Request.Context()

	if err := access.ValidateTarget(target.Database, target.Collection); err != nil {
		middleware.HandleError(c, err)
		return
	}
	id, err := access.ParseID(target.ID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := h.authorizer.Authorize(ctx, c.GetHeader(dto.HeaderPassword)); err != nil {
		middleware.HandleError(c, err)
		return
	}

	body, err := readBody(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	fields, err := access.ParseBody(body)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if fields.IsEmpty() {
		middleware.HandleError(c, domainerrors.NewValidationError("invalid request body", "no fields to update"))
		return
	}

	result, err := h.repository.UpdateOne(ctx, target.Database, target.Collection, models.IDFilter(id), fields)
	if err != nil {
		h.storeError(c, "update", target, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateResponse{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}

func (h *DocumentsHandler) delete(c *gin.Context, target dto.DocumentTarget) {
	ctx := c.Request.Context()

	if err := access.ValidateTarget(target.Database, target.Collection); err != nil {
		middleware.HandleError(c, err)
		return
	}
	id, err := access.ParseID(target.ID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := h.authorizer.Authorize(ctx, c.GetHeader(dto.HeaderPassword)); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.repository.DeleteOne(ctx, target.Database, target.Collection, models.IDFilter(id))
	if err != nil {
		h.storeError(c, "delete", target, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: result.DeletedCount})
}

// storeError classifies a repository failure. Only the connection string
// being absent is distinguished; every other store failure is a 500 carrying
// the underlying message.
func (h *DocumentsHandler) storeError(c *gin.Context, op string, target dto.DocumentTarget, err error) {
	logger := middleware.GetRequestLogger(c)
	logger.Error().
		Err(err).
		Str("operation", op).
		Str("database", target.Database).
		Str("collection", target.Collection).
		Msg("document store operation failed")

	if errors.Is(err, docdb.ErrNotConfigured) {
		middleware.HandleError(c, domainerrors.NewConfigurationError("MONGODB_URI", err))
		return
	}
	middleware.HandleError(c, domainerrors.NewInternalError("failed to "+op+" document", err))
}
