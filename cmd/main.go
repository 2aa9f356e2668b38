package main

import (
	"os"

	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
