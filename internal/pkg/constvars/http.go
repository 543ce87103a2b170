package constvars

const (
	MIMEApplicationJSON = "application/json"
	MIMEImagePNG        = "image/png"
	MIMEOctetStream     = "application/octet-stream"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXAPIKey       = "X-API-Key"
)

const (
	StatusOK                    = 200
	StatusCreated               = 201
	StatusBadRequest            = 400
	StatusUnauthorized          = 401
	StatusNotFound              = 404
	StatusRequestEntityTooLarge = 413
	StatusUnprocessableEntity   = 422
	StatusTooManyRequests       = 429
	StatusInternalServerError   = 500
	StatusBadGateway            = 502
	StatusGatewayTimeout        = 504
)
