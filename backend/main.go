package main

import (
	"flag"

	"hanviet-cards/backend/global"
	"hanviet-cards/backend/initialize"
	"hanviet-cards/backend/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	global.Logger.Info().Str("host", app.Cfg.Server.Host).Int("port", app.Cfg.Server.Port).Msg("listening")
	if err := server.StartHTTPServer(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server stopped")
	}
}
