package constants

type ContextKey string

const (
	AppKey       ContextKey = "app"
	LoggerKey    ContextKey = "logger"
	RequestStart ContextKey = "requestStart"
	PageContext  ContextKey = "pageCtx"
	ParamsKey    ContextKey = "params"
	LocalizerKey ContextKey = "localizer"
	LocaleKey    ContextKey = "locale"
)
