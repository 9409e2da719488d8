// Command fitline trains the two-parameter affine model on synthetic
// linear data with full-batch gradient descent over the autodiff tape,
// then reports the recovered coefficients and optionally plots the loss
// curve.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/fitline-ml/fitline/autodiff"
	"github.com/fitline-ml/fitline/backend/cpu"
	"github.com/fitline-ml/fitline/lossplot"
	"github.com/fitline-ml/fitline/regress"
)

func main() {
	var (
		intercept  = flag.Float64("intercept", 3, "true intercept of the generated line")
		slope      = flag.Float64("slope", 5, "true slope of the generated line")
		n          = flag.Int("n", 1000, "number of generated samples")
		iterations = flag.Int("iterations", 5000, "training iterations")
		lr         = flag.Float64("lr", 0.1, "learning rate")
		seed       = flag.Int64("seed", 0, "random seed (0: time-based)")
		plotPath   = flag.String("plot", "", "write the loss curve to this file (e.g. loss.png)")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	xs, ys, err := regress.Generate(*intercept, *slope, *n, rng)
	if err != nil {
		log.Fatalf("generating data: %v", err)
	}

	backend := autodiff.New(cpu.New())
	trainer := regress.New(regress.Config{LR: *lr, Rand: rng}, backend)

	fmt.Printf("target:  intercept=%.4f slope=%.4f (n=%d)\n", *intercept, *slope, *n)
	fmt.Printf("initial: intercept=%.4f slope=%.4f (lr=%g, seed=%d)\n",
		trainer.Intercept(), trainer.Slope(), *lr, *seed)

	losses, err := regress.Fit(trainer, xs, ys, *iterations)
	if err != nil {
		log.Fatalf("training: %v", err)
	}

	fmt.Printf("final:   intercept=%.6f slope=%.6f loss=%.3e after %d iterations\n",
		trainer.Intercept(), trainer.Slope(), losses[len(losses)-1], len(losses))

	if *plotPath != "" {
		if err := lossplot.Save(losses, *plotPath); err != nil {
			log.Fatalf("plotting: %v", err)
		}
		fmt.Printf("loss curve written to %s\n", *plotPath)
	}
}
