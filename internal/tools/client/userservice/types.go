package userservice

type loginParams struct {
	Username string `url:"username"`
	Password string `url:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}
