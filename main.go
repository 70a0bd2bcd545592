package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/kelimeavi/wordhunt-api/cmd/app"
)

// @termsOfService  http://swagger.io/terms/
//
// @license.name  MIT
//
// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
// @description Shared admin secret
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
