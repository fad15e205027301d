package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "verify_sqrt")

func main() {
	samples := flag.Int("samples", 1000, "number of random radicands")
	squares := flag.Int("squares", 4096, "number of perfect squares")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	threads := flag.Int("threads", runtime.NumCPU(), "number of goroutines")
	flag.Parse()

	log.WithFields(logrus.Fields{
		"cpu":  cpuid.CPU.BrandName,
		"fma3": cpuid.CPU.Supports(cpuid.FMA3),
		"seed": *seed,
	}).Info("Checking float32 square root")

	if err := verify(*seed, *samples, *squares, *threads); err != nil {
		log.WithError(err).Error("Verification failed")
		os.Exit(1)
	}
	log.Info("Verification passed")
}
