package main

import (
	"collabtime-api/core/logger"
	"collabtime-api/core/server"
)

// @title CollabTime API
// @version 1.0
// @description API backend for CollabTime - team timezone collaboration
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@collabtime.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
