package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "sqrt")

func main() {
	integer := flag.Bool("int", false, "treat arguments as uint32 and print the integer square root")
	checked := flag.Bool("checked", false, "report negative and NaN radicands as errors instead of printing NaN")
	flag.Parse()

	var status int
	for _, arg := range flag.Args() {
		out, err := root(arg, *integer, *checked)
		if err != nil {
			log.WithError(err).Error("Skipping argument")
			status = 2
			continue
		}
		fmt.Println(out)
	}
	os.Exit(status)
}
