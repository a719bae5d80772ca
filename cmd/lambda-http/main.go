package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"resume-styler/internal/bootstrap"
	"resume-styler/internal/shared/config"
	"resume-styler/internal/shared/server/respond"
	"resume-styler/internal/shared/telemetry"
)

// lambdaApp builds the router on the first invocation and reuses it for
// warm starts.
type lambdaApp struct {
	build func() (*gin.Engine, error)

	once  sync.Once
	err   error
	proxy *ginadapter.GinLambdaV2
}

func (a *lambdaApp) init() {
	router, err := a.build()
	if err != nil {
		a.err = err
		telemetry.Error("bootstrap.failed", map[string]any{"error": err.Error()})
		return
	}
	a.proxy = ginadapter.NewV2(router)
}

func (a *lambdaApp) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	a.once.Do(a.init)
	if a.err != nil {
		return errorResponse(http.StatusInternalServerError, "internal", "bootstrap failed"), nil
	}
	return a.proxy.ProxyWithContext(ctx, req)
}

func errorResponse(status int, code, message string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(respond.ErrorResponse{Error: respond.ErrorBody{Code: code, Message: message}})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func buildRouter() (*gin.Engine, error) {
	app, err := bootstrap.Build(config.Load())
	if err != nil {
		return nil, err
	}
	return app.Router, nil
}

func main() {
	app := &lambdaApp{build: buildRouter}
	lambda.Start(app.handle)
}
