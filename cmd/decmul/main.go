package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/wattle/biguint"
)

var debug bool

func init() {
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	flag.Parse()
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	in := bufio.NewReader(os.Stdin)

	aStr, err := readLine(in, "Enter first (decimal) number: ")
	if err != nil {
		log.WithError(err).Fatal("input error")
	}
	bStr, err := readLine(in, "Enter second (decimal) number: ")
	if err != nil {
		log.WithError(err).Fatal("input error")
	}

	a, err := biguint.ParseDecimal(aStr)
	if err != nil {
		log.WithError(err).Debug("first operand rejected")
		log.Fatal("invalid input, decimal digits only")
	}
	b, err := biguint.ParseDecimal(bStr)
	if err != nil {
		log.WithError(err).Debug("second operand rejected")
		log.Fatal("invalid input, decimal digits only")
	}

	log.WithFields(log.Fields{
		"aLimbs": a.LimbLen(),
		"bLimbs": b.LimbLen(),
	}).Debug("multiplying")

	fmt.Printf("Result (hex): %s\n", a.Mul(b).HexString())
}

// readLine prompts and reads one line, line terminator included; the
// parser treats it as trailing whitespace. A final unterminated line is
// still accepted, the way fgets would hand it over.
func readLine(r *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}
