package main

import (
	"flag"

	"portfolio.site/configs"
	"portfolio.site/configs/configsdatabase"
	"portfolio.site/configs/configslog"
	"portfolio.site/database"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run the schema migrations")
	seedFlag := flag.Bool("seed", false, "run the seeders")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
