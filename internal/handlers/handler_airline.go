package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
)

// airlineHandler handles HTTP requests for the global airline catalog.
type airlineHandler struct {
	airlineService portssvc.AirlineSvcFacade
}

func registerAirlineRoutes(rg *gin.RouterGroup, airlineService portssvc.AirlineSvcFacade) {
	h := &airlineHandler{airlineService: airlineService}

	rg.GET("/airlines", h.listAirlines)

	airlines := rg.Group("/airline")
	{
		airlines.GET("/:id", h.getAirline)
		airlines.POST("", h.createAirline)
		airlines.PUT("/:id/status", h.updateAirlineStatus)
		airlines.PUT("/:id", h.updateAirline)
		airlines.DELETE("/:id", h.deleteAirline)
	}
}

// listAirlines godoc
// @Summary List airlines
// @Tags airlines
// @Produce json
// @Success 200 {array} dto.AirlineResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /airlines [get]
func (h *airlineHandler) listAirlines(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	airlines, err := h.airlineService.ListAirlines(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "Airline")
		return
	}
	c.JSON(http.StatusOK, dto.ToAirlineResponses(airlines))
}

// getAirline godoc
// @Summary Get an airline by ID
// @Tags airlines
// @Produce json
// @Param id path string true "Airline ID"
// @Success 200 {object} dto.AirlineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /airline/{id} [get]
func (h *airlineHandler) getAirline(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	airline, err := h.airlineService.GetAirline(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err, "Airline")
		return
	}
	c.JSON(http.StatusOK, dto.ToAirlineResponse(airline))
}

// createAirline godoc
// @Summary Create an airline
// @Tags airlines
// @Accept json
// @Produce json
// @Param airline body dto.CreateAirlineRequest true "Airline details"
// @Success 201 {object} dto.InsertResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Code already registered"
// @Security BearerAuth
// @Router /airline [post]
func (h *airlineHandler) createAirline(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateAirlineRequest
	if !bindJSON(c, &req) {
		return
	}
	airline, err := h.airlineService.CreateAirline(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err, "Airline")
		return
	}
	c.JSON(http.StatusCreated, dto.NewInsertResult(airline.ID))
}

// updateAirlineStatus godoc
// @Summary Change an airline status
// @Tags airlines
// @Accept json
// @Produce json
// @Param id path string true "Airline ID"
// @Param status body dto.StatusUpdateRequest true "New status"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Status unchanged"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /airline/{id}/status [put]
func (h *airlineHandler) updateAirlineStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.StatusUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.airlineService.UpdateAirlineStatus(c.Request.Context(), p, c.Param("id"), req.Status); err != nil {
		respondError(c, err, "Airline")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// updateAirline godoc
// @Summary Update an airline
// @Tags airlines
// @Accept json
// @Produce json
// @Param id path string true "Airline ID"
// @Param airline body dto.UpdateAirlineRequest true "Fields to change"
// @Success 200 {object} dto.UpdateResult
// @Success 304 "Nothing changed"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /airline/{id} [put]
func (h *airlineHandler) updateAirline(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdateAirlineRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.airlineService.UpdateAirline(c.Request.Context(), p, c.Param("id"), req); err != nil {
		respondError(c, err, "Airline")
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedOne())
}

// deleteAirline godoc
// @Summary Delete an airline
// @Tags airlines
// @Produce json
// @Param id path string true "Airline ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /airline/{id} [delete]
func (h *airlineHandler) deleteAirline(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.airlineService.DeleteAirline(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err, "Airline")
		return
	}
	c.JSON(http.StatusOK, dto.DeletedOne())
}
