package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictac/internal/tictac/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := tictac(); err != nil {
		logrus.Fatal(err)
	}
}

func tictac() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
