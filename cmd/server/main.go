// Command server runs the habits API.
package main

import (
	"log"
	"os"

	"github.com/xy-planning-network/habits/ranger"
)

func main() {
	cfg, err := ranger.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	rng, err := ranger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Fatal(err.Error(), nil)
		os.Exit(1)
	}
}
