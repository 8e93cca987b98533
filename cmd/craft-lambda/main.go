//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/golang/glog"

	"facilityLayout/internal/api"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	resp, err := api.Solve(ctx, []byte(body))
	if err != nil {
		code := api.StatusCode(err)
		if code >= 500 {
			glog.Errorf("craft: %v", err)
		}
		return errResp(code, err.Error())
	}

	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	// Подробные строки обменов уходят в CloudWatch через stderr
	_ = flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	lambda.Start(handler)
}
