package main

import (
	"context"
	"log"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
