package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tourguard-inc/tourguard-api/dispatch"
	"github.com/tourguard-inc/tourguard-api/logmodule"
	"github.com/tourguard-inc/tourguard-api/monitor"
	"github.com/tourguard-inc/tourguard-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// Core pipeline
	pipeline *monitor.Pipeline
	zones    *monitor.ZoneIndex

	// Realtime dispatcher for admin sessions
	hub *dispatch.Hub
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	pipeline *monitor.Pipeline,
	zones *monitor.ZoneIndex,
	hub *dispatch.Hub) *Server {
	return &Server{
		mongoStore: mongoStore,
		pipeline:   pipeline,
		zones:      zones,
		hub:        hub,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	touristRoute := apiRoute.Group("/tourists")
	{
		touristRoute.POST("", s.trackTourist)
		touristRoute.GET("/:touristID", s.touristProfile)
		touristRoute.POST("/:touristID/factors", s.updateFactors)
		touristRoute.POST("/:touristID/locations", s.ingestLocation)
		touristRoute.GET("/:touristID/locations/history", s.locationHistory)
		touristRoute.GET("/:touristID/incidents", s.listIncidents)
		touristRoute.POST("/:touristID/panic", s.triggerPanic)
		touristRoute.POST("/:touristID/resolve", s.resolveEmergency)
	}

	wsRoute := r.Group("/ws")
	wsRoute.Use(logmodule.Ginrus("WS"))
	wsRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	wsRoute.GET("", s.streamAlerts)

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/geofences", s.listGeofences)
		secretRoute.POST("/geofences", s.createGeofence)
		secretRoute.PATCH("/geofences/:geofenceID", s.updateGeofence)
		secretRoute.DELETE("/geofences/:geofenceID", s.deleteGeofence)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/information", s.information)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "TourGuard 0.1",
		},
	})
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
