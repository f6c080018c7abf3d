package main

import (
	"flag"

	"campushub/internal/firebase"
	"campushub/internal/repository"
	"campushub/internal/server"
)

func main() {
	flag.Parse()

	firebase.Initialize()
	repository.Initialize()
	server.Start()
}
