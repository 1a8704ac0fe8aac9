package main

import (
	"log"

	"github.com/secquiz/secquiz/cmd/secquiz"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	secquiz.Execute()
}
