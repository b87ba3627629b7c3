package services

const (
	KeyAuthToken = "auth_token"
	KeyUserInfo  = "user_info"

	// lottery:client:<clientID>:<key>
	KeyClientEntry = "lottery:client:%s:%s"
)
