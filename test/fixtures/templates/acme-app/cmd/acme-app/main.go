package main

import "github.com/example/acme-app/internal/acme_app"

func main() {
	acmeApp := acme_app.New()
	acmeApp.Run()
}
