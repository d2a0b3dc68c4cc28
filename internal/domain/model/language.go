package model

import (
	"sort"
	"strings"
)

// Language is a provider language code with a display name.
type Language struct {
	Code string `json:"code" example:"zh"`
	Name string `json:"name" example:"Chinese (Simplified)"`
}

var languages = map[string]string{
	"zh":  "Chinese (Simplified)",
	"cht": "Chinese (Traditional)",
	"yue": "Cantonese",
	"wyw": "Classical Chinese",
	"en":  "English",
	"jp":  "Japanese",
	"kor": "Korean",
	"fra": "French",
	"spa": "Spanish",
	"th":  "Thai",
	"ara": "Arabic",
	"ru":  "Russian",
	"pt":  "Portuguese",
	"de":  "German",
	"it":  "Italian",
	"el":  "Greek",
	"nl":  "Dutch",
	"pl":  "Polish",
	"bul": "Bulgarian",
	"est": "Estonian",
	"dan": "Danish",
	"fin": "Finnish",
	"cs":  "Czech",
	"rom": "Romanian",
	"slo": "Slovenian",
	"swe": "Swedish",
	"hu":  "Hungarian",
	"vie": "Vietnamese",
}

// ISO 639-1 codes the provider spells differently.
var isoAliases = map[string]string{
	"ja":      "jp",
	"ko":      "kor",
	"fr":      "fra",
	"es":      "spa",
	"ar":      "ara",
	"bg":      "bul",
	"et":      "est",
	"da":      "dan",
	"fi":      "fin",
	"ro":      "rom",
	"sl":      "slo",
	"sv":      "swe",
	"vi":      "vie",
	"zh-cn":   "zh",
	"zh-hans": "zh",
	"zh-tw":   "cht",
	"zh-hant": "cht",
}

// NormalizeLanguage maps a code to the provider's spelling.
// "auto" is not a language and is rejected here.
func NormalizeLanguage(code string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	if alias, ok := isoAliases[c]; ok {
		c = alias
	}
	if _, ok := languages[c]; !ok {
		return "", false
	}
	return c, true
}

// Languages returns every known language sorted by code.
func Languages() []Language {
	out := make([]Language, 0, len(languages))
	for code, name := range languages {
		out = append(out, Language{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
