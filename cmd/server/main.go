package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/bankapp/internal/app"
	"github.com/dmitrijs2005/bankapp/internal/buildinfo"
	"github.com/dmitrijs2005/bankapp/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	if err := a.RunServer(ctx); err != nil {
		log.Printf("%v", err)
	}

}
