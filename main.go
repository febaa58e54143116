package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/docmind-ai/docmind-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}
}
