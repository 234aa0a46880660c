package main

import (
	"fmt"
	"os"
)

func main() {
	defer fmt.Println("deferred")
	if len(os.Args) > 3 {
		os.Exit(2) // want "direct os.Exit call in main function"
	}
	cleanup := func() {
		os.Exit(0)
	}
	_ = cleanup
	os.Exit(1) // want "direct os.Exit call in main function"
}

func helper() {
	os.Exit(3)
}
