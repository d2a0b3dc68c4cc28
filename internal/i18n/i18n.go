// Package i18n provides internationalization support for the translation service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once

	// supported locales; the first entry is the fallback.
	supportedTags = []language.Tag{language.English, language.Chinese}
	matcher       = language.NewMatcher(supportedTags)
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if fallbackMsg, exists := t.messages[DefaultLocale][key]; exists {
			return fallbackMsg
		}
		return key
	}

	return msg
}

// ParseLocale picks the best supported locale for an Accept-Language value.
func ParseLocale(acceptLang string) string {
	if acceptLang == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := supportedTags[index].Base()
	return base.String()
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.upload_too_large":     "Uploaded files are too large",
			"error.service_unavailable":  "Service temporarily unavailable",

			// Validation
			"error.validation.text_required":          "Text to translate is required",
			"error.validation.unknown_language":       "Unsupported language code",
			"error.validation.file_required":          "Please upload a file",
			"error.validation.unsupported_file":       "Unsupported file type",
			"error.validation.credentials_missing":    "Translation API credentials are not configured",
			"error.validation.credentials_incomplete": "Both App ID and secret key are required",

			// Provider
			"error.provider.timeout":              "The translation request timed out, please retry",
			"error.provider.system_error":         "Translation provider system error, please retry later",
			"error.provider.unauthorized":         "Translation API is not authorized, check the App ID and secret key",
			"error.provider.invalid_signature":    "Signature error, check the secret key configuration",
			"error.provider.rate_limited":         "Translation request rate limited, please try again later",
			"error.provider.unsupported_language": "The translation language is not supported",
			"error.provider.insufficient_balance": "Insufficient account balance, please top up",
			"error.provider.invalid_account":      "The account is invalid, check the API key",
			"error.provider.missing_parameter":    "The translation request is missing a parameter",
			"error.provider.ip_not_allowed":       "This client IP is not allowed by the translation provider",
			"error.provider.unknown":              "Translation provider returned an error",
			"error.provider.unreachable":          "Translation provider could not be reached",
			"error.provider.http_status":          "Translation provider returned an error status",
			"error.provider.empty_result":         "Translation provider returned no result",

			// Success messages
			"success.config_saved": "Configuration saved",
		},
		"zh": {
			"error.invalid_request":      "请求无效",
			"error.invalid_request_body": "请求体无效",
			"error.internal_error":       "发生意外错误",
			"error.unauthorized":         "未授权",
			"error.api_key_required":     "需要 API 密钥",
			"error.invalid_api_key":      "API 密钥无效",
			"error.not_found":            "未找到",
			"error.rate_limit_exceeded":  "请求过多，请稍后再试",
			"error.invalid_token":        "令牌无效或已过期",
			"error.token_required":       "需要身份验证令牌",
			"error.upload_too_large":     "上传的文件过大",
			"error.service_unavailable":  "服务暂时不可用",

			"error.validation.text_required":          "请输入要翻译的文本",
			"error.validation.unknown_language":       "不支持的语言代码",
			"error.validation.file_required":          "请上传文件",
			"error.validation.unsupported_file":       "不支持的文件格式",
			"error.validation.credentials_missing":    "请先配置翻译 API 的 App ID 和密钥",
			"error.validation.credentials_incomplete": "App ID 和密钥都不能为空",

			"error.provider.timeout":              "请求超时，请重试",
			"error.provider.system_error":         "系统错误，请稍后重试",
			"error.provider.unauthorized":         "API未授权，请检查App ID和API密钥",
			"error.provider.invalid_signature":    "签名错误，请检查密钥配置",
			"error.provider.rate_limited":         "访问频率受限，请稍后再试",
			"error.provider.unsupported_language": "翻译语言不支持",
			"error.provider.insufficient_balance": "账户余额不足，请充值",
			"error.provider.invalid_account":      "账户无效，请检查API密钥",
			"error.provider.missing_parameter":    "请求参数缺失",
			"error.provider.ip_not_allowed":       "客户端IP未被允许访问",
			"error.provider.unknown":              "翻译接口返回错误",
			"error.provider.unreachable":          "无法连接翻译服务",
			"error.provider.http_status":          "翻译服务返回了错误状态",
			"error.provider.empty_result":         "翻译服务未返回结果",

			"success.config_saved": "配置保存成功",
		},
	}
}
