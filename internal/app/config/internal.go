package config

type InternalConfig struct {
	App     App
	EHR     AppEHR
	Session AppSession
	JWT     AppJWT
}

type App struct {
	Env                        string
	Port                       string
	Timezone                   string
	AllowedOrigins             []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	LoginMaxAttemptsPerMinute  int
	LoginBlockTimeInMinutes    int
}

// AppEHR points at the backend record service every patient and login
// request is forwarded to.
type AppEHR struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}

type AppSession struct {
	CookieName         string
	CookieSecure       bool
	ExpiredTimeInHours int
}

type AppJWT struct {
	Secret string
}
