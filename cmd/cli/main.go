package main

import (
	"context"
	"log"
	"os"

	"github.com/edukit/edukit/internal/buildinfo"
	"github.com/edukit/edukit/internal/cli"
	"github.com/edukit/edukit/internal/config"
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
