package main

import (
	"context"
	"fmt"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"portal-backend/config"
	apiv1 "portal-backend/controllers/v1"
	"portal-backend/fiberlog"
	"portal-backend/initializers"
	"portal-backend/middleware"
	"sync"
	"time"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // limit of 20MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	//portal
	portal := fiber.New()
	apiV1.Mount("/portal", portal)
	portal.Use(middleware.AuthorizationRequired())
	apiv1.InitCatalogApiRouters(portal)
	apiv1.InitWorkflowApiRouters(portal)
	apiv1.InitRequestApiRouters(portal)
	apiv1.InitTaskApiRouters(portal)
	apiv1.InitErpApiRouters(portal)

	//admin
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AuthorizationRequired())
	admin.Use(middleware.AccessMiddleware())
	apiv1.InitUserApiRouters(admin)
	apiv1.InitCompanyApiRouters(admin)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
