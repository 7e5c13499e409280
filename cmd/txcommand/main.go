package main

import (
	"context"
	stdlog "log"
	"os"
)

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		stdlog.Println(err)
		os.Exit(1)
	}
}
