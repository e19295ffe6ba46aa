package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tourguard-inc/tourguard-api/monitor"
	"github.com/tourguard-inc/tourguard-api/schema"
)

type locationUpdateParams struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp int64   `json:"timestamp"`
}

// ingestLocation feeds one position update through the pipeline and returns
// any breaches it raised
func (s *Server) ingestLocation(c *gin.Context) {
	var params locationUpdateParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	pos := schema.Position{
		Location: schema.Location{
			Latitude:  params.Latitude,
			Longitude: params.Longitude,
		},
		Accuracy:  params.Accuracy,
		Timestamp: params.Timestamp,
	}

	breaches, err := s.pipeline.IngestLocation(c.Param("touristID"), pos)
	switch err {
	case nil:
	case monitor.ErrInvalidPosition:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidPosition)
		return
	case monitor.ErrUnknownTourist:
		abortWithEncoding(c, http.StatusNotFound, errorTouristNotTracked)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"breaches": breaches,
	})
}

// locationHistory returns the retained in-memory trail, most recent last.
// For a tourist not live in this process it serves the downsampled
// persisted trail instead.
func (s *Server) locationHistory(c *gin.Context) {
	history, err := s.pipeline.History(c.Param("touristID"))
	if err == monitor.ErrUnknownTourist {
		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}

		records, err := s.mongoStore.ListLocationHistory(
			c.Param("touristID"), limit, time.Now().Unix()+1)
		if shouldInterupt(err, c) {
			return
		}

		// persisted trail comes back newest first; the in-memory trail is
		// oldest first, keep the shapes aligned
		persisted := make([]schema.Position, 0, len(records))
		for i := len(records) - 1; i >= 0; i-- {
			persisted = append(persisted, records[i].Position)
		}

		c.JSON(http.StatusOK, gin.H{
			"history": persisted,
		})
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
	})
}

// listIncidents returns persisted breach incidents for a tourist
func (s *Server) listIncidents(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	earlier, err := strconv.ParseInt(c.DefaultQuery("earlier", "0"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if earlier <= 0 {
		earlier = time.Now().Unix() + 1
	}

	incidents, err := s.mongoStore.ListIncidents(c.Param("touristID"), limit, earlier)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"incidents": incidents,
	})
}
