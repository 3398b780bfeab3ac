package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-forager/api"
	forageapi "github.com/beka-birhanu/vinom-forager/api/forage"
	api_i "github.com/beka-birhanu/vinom-forager/api/i"
	"github.com/beka-birhanu/vinom-forager/config"
	"github.com/beka-birhanu/vinom-forager/infrastruture/logger"
	"github.com/beka-birhanu/vinom-forager/infrastruture/repo"
	"github.com/beka-birhanu/vinom-forager/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-forager/service"
	"github.com/beka-birhanu/vinom-forager/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	runRepo          i.RunRepo
	recentRuns       i.SortedQueue
	foragerService   i.Forager
	forageController api_i.Controller
	router           *api.Router
	appLogger        *logger.Logger
)

func initMongo(ctx context.Context) {
	if config.Envs.DBHost == "" {
		appLogger.Warning("DB_HOST not set, run history disabled")
		return
	}

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRunRepo(client *mongo.Client) {
	if client == nil {
		return
	}
	runRepo = repo.NewRunRepo(client, config.Envs.DBName, "runs")
	appLogger.Info("Run repository initialized")
}

func initRedis(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR not set, recent-run index disabled")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPass,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRecentRuns(client *redis.Client) {
	if client == nil {
		return
	}
	var err error
	recentRuns, err = sortedstorage.NewRedisSortedQueue(client, 0)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating recent-run index: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Recent-run index initialized")
}

func initForagerService() {
	serviceLogger, err := logger.New("FORAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating forager logger: %v", err))
		os.Exit(1)
	}

	foragerService, err = service.NewForagerService(runRepo, recentRuns, serviceLogger, &service.Options{
		RecentLimit:  int64(config.Envs.RecentRuns),
		MaxDimension: config.Envs.MaxDimension,
		MaxEpisodes:  config.Envs.MaxEpisodes,
		MaxFood:      config.Envs.MaxFood,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating forager service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Forager service initialized")
}

func initForageController() {
	var err error
	forageController, err = forageapi.NewForageController(foragerService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating forage controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Forage controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/",
		Controllers: []api_i.Controller{forageController},
		Middlewares: []gin.HandlerFunc{api.CORS(config.Envs.CORSOrigins)},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	if mongoClient != nil {
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
	}

	initRedis(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initRunRepo(mongoClient)
	initRecentRuns(redisClient)
	initForagerService()
	initForageController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
