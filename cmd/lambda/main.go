package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/studylens/internal/container"

	_ "github.com/saulo-duarte/studylens/docs"
)

func main() {
	c := container.New()
	adapter := httpadapter.New(c.Router())

	lambda.Start(adapter.ProxyWithContext)
}
