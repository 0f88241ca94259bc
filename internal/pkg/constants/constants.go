package constants

const (
	CtxKeyUserID    = "user_id"
	CtxKeyCompanyID = "company_id"
	CtxKeyRequestID = "request_id"

	CookieKeyAuthToken = "auth_token"
	HeaderAuthPrefix   = "Bearer "

	ViperKeyAddr                = "addr"
	ViperKeyDatabaseURL         = "database_url"
	ViperSecretKey              = "secret"
	ViperKeyCORSOrigin          = "cors_origin"
	ViperKeyLegislationIndexURL = "legislation_index_url"
	ViperKeyDebug               = "debug"
)
