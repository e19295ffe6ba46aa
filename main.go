package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/tourguard-inc/tourguard-api/api"
	"github.com/tourguard-inc/tourguard-api/background"
	"github.com/tourguard-inc/tourguard-api/dispatch"
	"github.com/tourguard-inc/tourguard-api/external/geoinfo"
	"github.com/tourguard-inc/tourguard-api/geo"
	"github.com/tourguard-inc/tourguard-api/monitor"
	"github.com/tourguard-inc/tourguard-api/store"
)

var (
	server     *api.Server
	hub        *dispatch.Hub
	mongoStore store.MongoStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("tourguard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if hub != nil {
			log.Info("Shutdown alert dispatcher")
			hub.Shutdown()
		}

		if mongoStore != nil {
			log.Info("Shutting down db store")
			mongoStore.Close()
		}

		os.Exit(1)
	}()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Init redis-backed task queue
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "tourguard_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	// seed the live zone index from the persisted zone set
	zones := monitor.NewZoneIndex()
	persisted, err := mongoStore.ListGeofences()
	if err != nil {
		log.Panicf("load geofence zones with error: %s", err)
	}
	for _, zone := range persisted {
		if err := zones.Upsert(zone); err != nil {
			log.WithField("prefix", "init").WithField("zone", zone.ID).Warn(err)
		}
	}
	log.WithField("prefix", "init").Infof("Loaded %d geofence zones", len(persisted))

	// address enrichment is optional; without an api key incidents are
	// recorded without an address
	var resolver geo.LocationResolver
	if apiKey := viper.GetString("map.apikey"); apiKey != "" {
		geoClient, err := geoinfo.New(apiKey)
		if err != nil {
			log.Panic(err)
		}
		resolver = geo.NewGeocodingLocationResolver(geoClient)
	}

	hub = dispatch.NewHub()
	pipeline := monitor.NewPipeline(
		zones,
		hub,
		store.NewPipelineRecorder(mongoStore),
		background.NewEnqueuer(machineryServer),
		resolver)

	// Init http server
	server = api.NewServer(mongoStore, pipeline, zones, hub)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
