package habits

// A Key names a value stashed in a request's context.Context.
type Key string

const (
	CurrentUserKey Key = "CurrentUserKey" // User resolved from the bearer token
	IpAddrKey      Key = "IpAddrKey"      // client IP address
	RequestIDKey   Key = "RequestIDKey"   // UUID assigned to the request
)

func (k Key) String() string { return "habits context key: " + string(k) }
