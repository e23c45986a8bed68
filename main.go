package main

import (
	"os"

	"github.com/DoctorPortal/DoctorPortal/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
