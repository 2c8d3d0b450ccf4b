package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"agrilease/cmd"
	httpadapter "agrilease/internal/adapters/in/http"
	"agrilease/internal/adapters/out/postgres/devicerepo"
	"agrilease/internal/adapters/out/postgres/leaserepo"
	"agrilease/internal/adapters/out/postgres/orderrepo"
	"agrilease/internal/adapters/out/postgres/pricingrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		OrderTypeStrategy: goDotEnvVariable("ORDER_TYPE_STRATEGY"),
		UploadRootDir:     goDotEnvVariable("UPLOAD_ROOT_DIR"),
		UploadBaseURL:     goDotEnvVariable("UPLOAD_BASE_URL"),
		RateLimitPerSec:   goDotEnvVariable("RATE_LIMIT_PER_SEC"),
		RateLimitBurst:    goDotEnvVariable("RATE_LIMIT_BURST"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&devicerepo.DeviceDTO{},
		&orderrepo.OrderDTO{},
		&leaserepo.LeaseDTO{},
		&leaserepo.OperatorDTO{},
		&pricingrepo.PricingRuleDTO{},
		&pricingrepo.RateDTO{},
		&pricingrepo.ThresholdConfigDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err := pricingrepo.EnsureDefaultRuleIndex(gormDB); err != nil {
		log.Fatalf("Error creating pricing indexes: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(httpadapter.RateLimitMiddleware(parseRateLimit(configs)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateDeviceCommandHandler(),
		app.CreateChangeDeviceStatusCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateCreateLeaseFromOrderCommandHandler(),
		app.CreateEndLeaseCommandHandler(),
		app.CreateAssignOperatorCommandHandler(),
		app.CreateCreatePricingRuleCommandHandler(),
		app.CreateDiscoverDevicesQueryHandler(),
		app.CreateGetActivePricingQueryHandler(),
		app.CreateGetOrdersByRequesterQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func parseRateLimit(configs cmd.Config) (rate.Limit, int) {
	perSec, err := strconv.ParseFloat(configs.RateLimitPerSec, 64)
	if err != nil {
		log.Fatalf("Error parsing RATE_LIMIT_PER_SEC: %v", err)
	}
	burst, err := strconv.Atoi(configs.RateLimitBurst)
	if err != nil {
		log.Fatalf("Error parsing RATE_LIMIT_BURST: %v", err)
	}
	return rate.Limit(perSec), burst
}
