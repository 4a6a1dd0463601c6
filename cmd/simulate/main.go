// Command simulate plays rounds headlessly with a scripted bot and prints
// how each one went. It is used to check balance changes to tuning.yaml.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/pizzasurvivor/prefabs"
)

func main() {
	seconds := flag.Float64("seconds", 300, "stop a run after this many seconds of play")
	seed := flag.Uint64("seed", 1, "seed of the first run; later runs use seed+i")
	runs := flag.Int("runs", 1, "number of runs")
	bot := flag.String("bot", "circle", "bot input: idle or circle")
	flag.Parse()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < *runs; i++ {
		res, err := simulate(Options{
			Tuning:  tuning,
			Seed:    *seed + uint64(i),
			Seconds: *seconds,
			Bot:     *bot,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("run %d: %s\n", i+1, res)
	}
}
