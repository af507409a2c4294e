// This example program replays an rdslog file through the gords compat
// surface and prints the PI code each time it changes, until the file is
// exhausted.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"gords"
	"gords/rdslog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: example <log-path>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	dec, data := gords.NewDecoder(gords.DefaultConfig())
	reader := rdslog.NewReader(f)

	var lastPI uint16
	for {
		g, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		dec.Decode(g)
		if data.PICode != lastPI {
			fmt.Printf("PI: %04X\n", data.PICode)
			lastPI = data.PICode
		}
	}

	fmt.Println("done")
}
