package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tourguard-inc/tourguard-api/monitor"
	"github.com/tourguard-inc/tourguard-api/schema"
	"github.com/tourguard-inc/tourguard-api/store"
)

type geofenceParams struct {
	Name         string             `json:"name"`
	Center       *schema.Location   `json:"center"`
	RadiusMeters float64            `json:"radius_meters"`
	DangerLevel  schema.DangerLevel `json:"danger_level"`
}

func validDangerLevel(level schema.DangerLevel) bool {
	switch level {
	case schema.DangerLevelSafe, schema.DangerLevelCaution, schema.DangerLevelDanger:
		return true
	}
	return false
}

// createGeofence persists a zone and makes it live in the breach index
func (s *Server) createGeofence(c *gin.Context) {
	var params geofenceParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Center == nil || !validDangerLevel(params.DangerLevel) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	zone := schema.GeofenceZone{
		ID:           uuid.New().String(),
		Name:         params.Name,
		Center:       *params.Center,
		RadiusMeters: params.RadiusMeters,
		DangerLevel:  params.DangerLevel,
	}

	if err := s.zones.Upsert(zone); err == monitor.ErrInvalidZoneRadius {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidGeofenceRadius)
		return
	}

	if err := s.mongoStore.CreateGeofence(zone); err != nil {
		// keep the live index consistent with the store
		s.zones.Remove(zone.ID)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"geofence": zone,
	})
}

func (s *Server) updateGeofence(c *gin.Context) {
	var params geofenceParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	id := c.Param("geofenceID")
	existing, ok := s.zones.Get(id)
	if !ok {
		abortWithEncoding(c, http.StatusNotFound, errorGeofenceNotFound)
		return
	}

	zone := existing
	if params.Name != "" {
		zone.Name = params.Name
	}
	if params.Center != nil {
		zone.Center = *params.Center
	}
	if params.RadiusMeters != 0 {
		zone.RadiusMeters = params.RadiusMeters
	}
	if params.DangerLevel != "" {
		if !validDangerLevel(params.DangerLevel) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		zone.DangerLevel = params.DangerLevel
	}

	if err := s.zones.Upsert(zone); err == monitor.ErrInvalidZoneRadius {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidGeofenceRadius)
		return
	}

	if err := s.mongoStore.UpdateGeofence(zone); err != nil {
		// keep the live index consistent with the store
		_ = s.zones.Upsert(existing)
		if err == store.ErrGeofenceNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorGeofenceNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"geofence": zone,
	})
}

func (s *Server) deleteGeofence(c *gin.Context) {
	id := c.Param("geofenceID")

	if err := s.mongoStore.DeleteGeofence(id); err != nil {
		if err == store.ErrGeofenceNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorGeofenceNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	s.zones.Remove(id)

	c.JSON(http.StatusOK, gin.H{
		"deleted": id,
	})
}

func (s *Server) listGeofences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"geofences": s.zones.Snapshot(),
	})
}
