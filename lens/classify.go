package lens

import "strings"

// ResourceCategory is the coarse bucket a request falls into, derived from
// the declared content type with a URL-extension fallback.
type ResourceCategory string

const (
	CategoryHTML    ResourceCategory = "HTML"
	CategoryCSS     ResourceCategory = "CSS"
	CategoryJS      ResourceCategory = "JS"
	CategoryImage   ResourceCategory = "Image"
	CategoryFont    ResourceCategory = "Font"
	CategoryJSONAPI ResourceCategory = "JSON-API"
	CategoryVideo   ResourceCategory = "Video"
	CategoryOther   ResourceCategory = "Other"
)

// classifyRule pairs a predicate with the category it yields. Rules are
// evaluated strictly in order; the first match wins.
type classifyRule struct {
	matches  func(url, contentType string) bool
	category ResourceCategory
}

func contentTypeContains(substrings ...string) func(string, string) bool {
	return func(_, contentType string) bool {
		for _, s := range substrings {
			if strings.Contains(contentType, s) {
				return true
			}
		}
		return false
	}
}

func urlExtension(extensions ...string) func(string, string) bool {
	return func(url, _ string) bool {
		lower := strings.ToLower(url)
		for _, ext := range extensions {
			if strings.HasSuffix(lower, ext) {
				return true
			}
		}
		return false
	}
}

// content-type rules run first, then extension fallbacks for responses with
// no usable MIME type.
var classifyRules = []classifyRule{
	{contentTypeContains("text/html"), CategoryHTML},
	{contentTypeContains("text/css"), CategoryCSS},
	{contentTypeContains("javascript"), CategoryJS},
	{contentTypeContains("image/"), CategoryImage},
	{contentTypeContains("font/", "application/font"), CategoryFont},
	{func(url, contentType string) bool {
		return strings.Contains(contentType, "application/json") || strings.HasSuffix(url, ".json")
	}, CategoryJSONAPI},
	{contentTypeContains("video/"), CategoryVideo},
	{urlExtension(".js", ".jsx", ".ts", ".tsx"), CategoryJS},
	{urlExtension(".css"), CategoryCSS},
	{urlExtension(".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp"), CategoryImage},
	{urlExtension(".woff", ".woff2", ".ttf", ".eot"), CategoryFont},
}

// Classify maps a request URL and its declared content type to a resource
// category. Total: every input, including empty strings, yields a category.
func Classify(url, contentType string) ResourceCategory {
	for _, rule := range classifyRules {
		if rule.matches(url, contentType) {
			return rule.category
		}
	}
	return CategoryOther
}
