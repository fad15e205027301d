package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/neurlang/arith/datasets/squareroot"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "verify_isqrt")

func main() {
	max := flag.Uint64("max", 0xffff, "check radicands below this bound")
	size := flag.String("size", "", "check a fixed dataset instead of -max: small, medium, big or huge")
	exhaustive := flag.Bool("exhaustive", false, "search every uint32 for a counterexample")
	digest := flag.Bool("digest", false, "also compare SHA-256 digests of both output streams")
	threads := flag.Int("threads", runtime.NumCPU(), "number of goroutines")
	flag.Parse()

	var err error
	if *exhaustive {
		err = searchAll(1<<32, *threads)
	} else if *size != "" {
		var samples []squareroot.Sample
		if samples, err = dataset(*size); err == nil {
			err = checkSamples(samples, *threads)
		}
	} else {
		err = checkRange(*max, *threads)
	}
	if err == nil && *digest {
		err = compareDigests(*max, *threads)
	}
	if err != nil {
		log.WithError(err).Error("Verification failed")
		os.Exit(1)
	}
	log.Info("Verification passed")
}
