package constants

// Base Routes
const (
	HealthPath  = "/health"
	VersionPath = "/version"
)

// User Routes
const (
	UserBasePath    = "/user"
	UserCreatePath  = "/user/create"
	UserFindAllPath = "/user/findall"
	UserFindOnePath = "/user/findone"
	UserUpdatePath  = "/user/update"
	UserDeletePath  = "/user/delete"
)

// Secret Routes
const (
	SecretBasePath       = "/secret"
	SecretCreatePath     = "/secret/create"
	SecretFindAllPath    = "/secret/findall"
	SecretFindByUserPath = "/secret/findbyuser"
	SecretFindOnePath    = "/secret/findone"
	SecretUpdatePath     = "/secret/update"
	SecretDeletePath     = "/secret/delete"
)

// Endpoint Names key the validation rule sets. Each route handler runs the
// rule set registered under its endpoint name before touching the data layer.
const (
	EndpointUserCreate       = "user/create"
	EndpointUserFindAll      = "user/findall"
	EndpointUserFindOne      = "user/findone"
	EndpointUserUpdate       = "user/update"
	EndpointUserDelete       = "user/delete"
	EndpointSecretCreate     = "secret/create"
	EndpointSecretFindAll    = "secret/findall"
	EndpointSecretFindByUser = "secret/findbyuser"
	EndpointSecretFindOne    = "secret/findone"
	EndpointSecretUpdate     = "secret/update"
	EndpointSecretDelete     = "secret/delete"
)
