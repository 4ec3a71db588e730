package main

import (
	"context"
	"log"
	"os"

	"github.com/Hari20032005/assignment-nudge/internal/buildinfo"
	"github.com/Hari20032005/assignment-nudge/internal/cli"
	"github.com/Hari20032005/assignment-nudge/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
