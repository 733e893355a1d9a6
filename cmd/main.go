package main

import (
	"kursbot/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application exited with error")
	}
}
