package handlers

import (
	"log"
	"net/http"
	"time"

	request "towdispatch/internal/adapter/http/dto/request"
	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/domain/entities"
	"towdispatch/internal/domain/pricing"
	"towdispatch/internal/usecase/interfaces"
	"towdispatch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errDistanceLookup      = pkg.NewDomainErrorSimple("DISTANCE_LOOKUP_FAILED", "Route distance lookup failed", http.StatusBadGateway)
	errQuoteRejected       = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Quote rejected", http.StatusBadRequest)
)

// QuoteHandler prices a prospective route for the booking wizard. This is the
// only path that touches the geo collaborator; booking creation receives the
// resolved distance and stays I/O free.

type QuoteHandler struct {
	geo        interfaces.IGeoDistanceProvider
	calculator *pricing.Calculator
}

func NewQuoteHandler(geo interfaces.IGeoDistanceProvider, calculator *pricing.Calculator) *QuoteHandler {
	return &QuoteHandler{geo: geo, calculator: calculator}
}

func (h *QuoteHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	via := make([]entities.Location, 0, len(payload.Via))
	for _, v := range payload.Via {
		via = append(via, v.ToLocation())
	}

	distanceKm, err := h.geo.DistanceKm(c.Request.Context(), payload.From.ToLocation(), via, payload.To.ToLocation())
	if err != nil {
		log.Printf("[quote][handler] distance lookup failed err=%v", err)
		c.JSON(errDistanceLookup.HTTPStatus, errDistanceLookup.ToHTTPError())
		return
	}

	period := payload.ResolvePeriod(time.Now().UTC())
	breakdown, err := h.calculator.Quote(distanceKm, period)
	if err != nil {
		c.JSON(errQuoteRejected.HTTPStatus, errQuoteRejected.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(distanceKm, period, breakdown))
}
