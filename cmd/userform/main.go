//go:build js || wasm
// +build js wasm

package main

import (
	"syscall/js"

	"github.com/vcrobe/userform/internal/apiclient"
	"github.com/vcrobe/userform/internal/app/components/userform"
	"github.com/vcrobe/userform/internal/form"
	"github.com/vcrobe/userform/pkg/logger"
	"github.com/vcrobe/userform/runtime"
)

func main() {
	log, err := logger.NewConsole("debug")
	if err != nil {
		panic("Error creating logger: " + err.Error())
	}

	// The API is served from the same origin as the page.
	origin := js.Global().Get("location").Get("origin").String()
	client := apiclient.New(origin, apiclient.WithLogger(log))

	page := &userform.UserForm{
		Form: form.New(client, client, log),
		Log:  log,
	}

	renderer := runtime.NewRenderer("#app", log)
	renderer.SetCurrentComponent(page)
	renderer.ReRender()

	// Keep the Go program running
	select {}
}
