package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tourguard-inc/tourguard-api/monitor"
)

type panicParams struct {
	Reason string `json:"reason"`
}

// triggerPanic flips the tourist into emergency and broadcasts the alert
func (s *Server) triggerPanic(c *gin.Context) {
	var params panicParams
	// the panic button may send an empty body
	_ = c.ShouldBindJSON(&params)
	if params.Reason == "" {
		params.Reason = "Panic button pressed"
	}

	profile, err := s.pipeline.TriggerPanic(c.Param("touristID"), params.Reason)
	if err == monitor.ErrUnknownTourist {
		abortWithEncoding(c, http.StatusNotFound, errorTouristNotTracked)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
	})
}

func (s *Server) resolveEmergency(c *gin.Context) {
	profile, err := s.pipeline.ResolveEmergency(c.Param("touristID"))
	if err == monitor.ErrUnknownTourist {
		abortWithEncoding(c, http.StatusNotFound, errorTouristNotTracked)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
	})
}
