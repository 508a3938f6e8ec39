package main

import (
	"fmt"
	"log"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/stahnma/gh-showcase/internal/commands"
	"github.com/stahnma/gh-showcase/internal/config"
	lambdapkg "github.com/stahnma/gh-showcase/internal/lambda"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	app := commands.NewApp(cfg, GitSHA, GitDirty)

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		awslambda.Start(lambdapkg.NewHandler(app))
	} else {
		rootCmd := app.NewRootCommand()
		if err := rootCmd.Execute(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
}
