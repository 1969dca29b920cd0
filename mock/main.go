package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/api/destinations", DestinationsHandler)
	http.HandleFunc("/api/packages", PackagesHandler)
	http.HandleFunc("/api/fixed-departures", FixedDeparturesHandler)
	http.HandleFunc("/api/fixed-departures/slug/", FixedDepartureBySlugHandler)

	http.HandleFunc("/api/packages/suggest", SuggestHandler("mock/files/packages.json", "packages", packageSuggestion))
	http.HandleFunc("/api/fixed-departures/suggest", SuggestHandler("mock/files/fixed_departures.json", "fixedDepartures", departureSuggestion))
	http.HandleFunc("/api/destinations/suggest", SuggestHandler("mock/files/destinations.json", "destinations", destinationSuggestion))
	http.HandleFunc("/api/holiday-types/suggest", SuggestHandler("mock/files/holiday_types.json", "holidayTypes", holidayTypeSuggestion))

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Go Mock Server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
