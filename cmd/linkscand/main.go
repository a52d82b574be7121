package main

import (
	"flag"
	"log"

	"linkscan"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to the server config file")
	flag.Parse()

	ws, err := linkscan.NewWebServer(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Fatal(ws.ListenAndServe())
}
