package main

import (
	"fmt"

	quantumgo "github.com/sara-star-quant/quantum-go"
)

func runID() {
	seed, err := quantumgo.IDGen()
	if err != nil {
		fatal("id generation failed: %v", err)
	}

	tempID, err := quantumgo.GetTempID(seed)
	if err != nil {
		fatal("temp id derivation failed: %v", err)
	}

	fmt.Printf("seed:     %s\n", seed)
	fmt.Printf("temp id:  %s\n", tempID)
}
