package api

import (
	"net/http"

	reqdto "lendhub/internal/handler/dto/request"
	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
}

func NewRequestHandler(requestCommands commands.RequestCommands, requestQueries queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Create borrow request
// @Description Create a new pending borrow request for an item
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBorrowRequest true "Borrow request"
// @Success 201 {object} resdto.BorrowRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	borrowerEmail := middleware.GetAuthenticatedEmail(c)
	if borrowerEmail == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBorrowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateRequestParams{
		ItemID:        req.ItemID,
		LenderEmail:   req.LenderEmail,
		BorrowerEmail: borrowerEmail,
		BorrowerPhone: req.BorrowerPhone,
		Message:       req.Message,
		Duration:      req.Duration,
	}

	view, err := h.requestCommands.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary Get borrow request
// @Description Get a borrow request by ID
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.BorrowRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Approve borrow request
// @Description Approve a pending request and book the item until the computed return time
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ApproveResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/approve [patch]
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.requestCommands.Approve(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errs.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		case errs.Is(err, commands.ErrItemUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item is already booked",
			})
		case errs.Is(err, commands.ErrRequestConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is not pending",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ApproveResponse{
		ReturnTime: result.ReturnTime,
		Duration:   result.Duration,
	})
}

// @Summary Complete borrow request
// @Description Complete an approved request, release the item and settle karma for both parties
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CompleteBorrowRequest false "Completion details"
// @Success 200 {object} resdto.CompleteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/complete [patch]
func (h *RequestHandler) CompleteRequest(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.CompleteBorrowRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.requestCommands.Complete(c.Request.Context(), id, req.Rating)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errs.Is(err, commands.ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request already completed",
			})
		case errs.Is(err, commands.ErrRequestConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is not approved",
			})
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CompleteResponse{
		ExcessTime:    result.ExcessTime,
		BorrowerKarma: result.BorrowerKarma,
	})
}

// @Summary Reject borrow request
// @Description Reject a pending request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/reject [patch]
func (h *RequestHandler) RejectRequest(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.requestCommands.Reject(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errs.Is(err, commands.ErrRequestConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is not pending",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Request rejected",
	})
}

// @Summary List requests received by a lender
// @Description List requests against the lender's items, newest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param email path string true "Lender email"
// @Success 200 {array} resdto.BorrowRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /requests/owner/{email} [get]
func (h *RequestHandler) ListOwnerRequests(c *gin.Context) {
	views, err := h.requestQueries.ListByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, h.toListResponse(views))
}

// @Summary List requests sent by a borrower
// @Description List requests the borrower has sent, newest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param email path string true "Borrower email"
// @Success 200 {array} resdto.BorrowRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /requests/borrower/{email} [get]
func (h *RequestHandler) ListBorrowerRequests(c *gin.Context) {
	views, err := h.requestQueries.ListByBorrower(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, h.toListResponse(views))
}

func (h *RequestHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *RequestHandler) toListResponse(views []*queries.RequestListItem) []*resdto.BorrowRequestListResponse {
	response := make([]*resdto.BorrowRequestListResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRequestListItem(v)
	}
	return response
}
