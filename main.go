package main

import (
	"github.com/GlobalPath/cms_service/config"
	"github.com/GlobalPath/cms_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
