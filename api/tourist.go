package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tourguard-inc/tourguard-api/monitor"
	"github.com/tourguard-inc/tourguard-api/score"
	"github.com/tourguard-inc/tourguard-api/store"
)

type trackTouristParams struct {
	TouristID string `json:"tourist_id"`
	Name      string `json:"name"`
}

// trackTourist registers a tourist for monitoring. An empty tourist_id gets
// a generated one.
func (s *Server) trackTourist(c *gin.Context) {
	var params trackTouristParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.TouristID == "" {
		params.TouristID = uuid.New().String()
	}

	profile := s.pipeline.Track(params.TouristID, params.Name)

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
	})
}

func (s *Server) touristProfile(c *gin.Context) {
	profile, err := s.pipeline.Profile(c.Param("touristID"))
	if err == monitor.ErrUnknownTourist {
		// not live in this process; fall back to the persisted snapshot
		persisted, err := s.mongoStore.GetProfile(c.Param("touristID"))
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorTouristNotTracked)
			return
		}
		if shouldInterupt(err, c) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"profile": *persisted,
		})
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
	})
}

// updateFactors recomputes the safety score from reported profile factors
func (s *Server) updateFactors(c *gin.Context) {
	var factors score.Factors
	if err := c.BindJSON(&factors); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	profile, err := s.pipeline.UpdateFactors(c.Param("touristID"), factors)
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
