package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/nayanapsychologist-spec/games/api/internal/clue"
	"github.com/nayanapsychologist-spec/games/api/internal/config"
	"github.com/nayanapsychologist-spec/games/api/internal/service"
)

var svc *service.Service

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}
	svc, err = service.FromConfig(cfg)
	if err != nil {
		panic("failed to wire service: " + err.Error())
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func jsonResponse(code int, v any) events.APIGatewayProxyResponse {
	b, _ := json.Marshal(v)
	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	word := event.QueryStringParameters["word"]
	if strings.TrimSpace(word) == "" {
		return jsonResponse(400, errorBody{Error: "Missing word parameter"}), nil
	}

	out, err := svc.Generate(ctx, word)
	if err != nil {
		var fe *clue.FormatError
		if errors.As(err, &fe) {
			details := fe.Raw
			if details == "" {
				details = fe.Error()
			}
			return jsonResponse(500, errorBody{Error: "Unexpected reply from the text model", Details: details}), nil
		}
		return jsonResponse(500, errorBody{Error: "Failed to generate clue", Details: err.Error()}), nil
	}
	return jsonResponse(200, out), nil
}

func main() {
	lambda.Start(handler)
}
