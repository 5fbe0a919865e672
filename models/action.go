package models

// ActionParameter is an input the client must fill before following an
// action's href.
type ActionParameter struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Action is a presentable link offered in a discovery response.
type Action struct {
	Label      string            `json:"label"`
	Href       string            `json:"href"`
	Parameters []ActionParameter `json:"parameters,omitempty"`
}

// ActionLinks wraps the action list under the protocol's "links" key.
type ActionLinks struct {
	Actions []Action `json:"actions"`
}

// GetResponse is the body of both GET routes. Links is only set on the
// discovery route.
type GetResponse struct {
	Icon        string       `json:"icon"`
	Label       string       `json:"label"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Links       *ActionLinks `json:"links,omitempty"`
}

// PostRequest is the body of both POST routes.
type PostRequest struct {
	Account string `json:"account" binding:"required"`
}

// PostResponse carries the unsigned, base64 serialized transaction.
type PostResponse struct {
	Transaction string `json:"transaction"`
}

// ErrorResponse is the body of every non-200 response.
type ErrorResponse struct {
	Message string `json:"message"`
}
