package constant

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeBusiness UserType = "business"
)

type contextKey string

// AuthUserKey holds the *model.AuthUser resolved by the auth middleware.
const AuthUserKey contextKey = "auth_user"

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	RefreshTokenKeyPrefix = "refreshToken:"
)
