package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		logrus.WithError(err).Error("donation-recon exited")
		os.Exit(1)
	}
}
