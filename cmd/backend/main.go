package main

import (
	"log"

	"shopadmin/internal/api"

	_ "shopadmin/docs"
)

// @title Shop Admin API
// @version 1.0
// @description Административный REST API интернет-магазина
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
