package baidu

import "github.com/guttosm/translate-service/internal/domain/model"

// successCode is sent by some endpoints alongside a normal payload.
const successCode = "52000"

var providerKinds = map[string]model.ProviderKind{
	"52001": model.ProviderTimeout,
	"52002": model.ProviderSystemError,
	"52003": model.ProviderUnauthorized,
	"52004": model.ProviderInsufficientBalance,
	"52005": model.ProviderInvalidAccount,
	"54000": model.ProviderMissingParameter,
	"54001": model.ProviderInvalidSignature,
	"54003": model.ProviderRateLimited,
	"54004": model.ProviderInsufficientBalance,
	"54005": model.ProviderRateLimited,
	"58000": model.ProviderIPNotAllowed,
	"58001": model.ProviderUnsupportedLanguage,
	"90107": model.ProviderInvalidAccount,
}

// KindForCode classifies a provider error code. Unknown codes map to ProviderUnknown.
func KindForCode(code string) model.ProviderKind {
	if kind, ok := providerKinds[code]; ok {
		return kind
	}
	return model.ProviderUnknown
}

func newProviderError(code, message string) *model.ProviderError {
	return &model.ProviderError{
		Kind:    KindForCode(code),
		Code:    code,
		Message: message,
	}
}
