package apperr

const (
	ItemTypeClientError = "ClientError"
	ItemTypeServerError = "ServerError"

	// ServerErrorDetails is the only detail a caller ever sees for a 500.
	ServerErrorDetails = "Something in the API went wrong! Check the errors/ folder."
)

// Body is the JSON error body of every API error response.
type Body struct {
	ItemType string `json:"itemType"`
	Details  string `json:"details"`
}

func ClientBody(details string) Body {
	return Body{ItemType: ItemTypeClientError, Details: details}
}

func ServerBody() Body {
	return Body{ItemType: ItemTypeServerError, Details: ServerErrorDetails}
}
