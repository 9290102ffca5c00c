// Command server runs the voicescribe HTTP API.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/voicescribe-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
