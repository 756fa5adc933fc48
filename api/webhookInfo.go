package api

type webhookInfoResponse struct {
	Message string `json:"message"`
	Usage   string `json:"usage"`
}

func webhookInfo() *webhookInfoResponse {
	return &webhookInfoResponse{
		Message: "Backend update webhook endpoint",
		Usage:   "POST with x-webhook-signature header and backend.update payload",
	}
}
