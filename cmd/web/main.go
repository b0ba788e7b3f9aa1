package main

import "studiofit_backend/internal/app"

func main() {
	app.Run()
}
