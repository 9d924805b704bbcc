package main

import (
	"flag"
	"log"
	"net/http"

	"chess-game/netplay"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	srv := netplay.NewServer()
	log.Printf("chess relay listening on %s", *addr)
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
