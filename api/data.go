package main

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// errorBody is the shape of every error response.
type errorBody struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
