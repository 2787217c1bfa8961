package passage

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/heartmarshall/interlinear/internal/domain"
)

// displayNames maps translation codes to display names. Translations that
// share a name are told apart by year, then language, then dialect, then
// provider, using the first attribute that is distinct across the group.
func displayNames(translations []domain.Translation) map[string]string {
	groups := make(map[string][]domain.Translation)
	for _, t := range translations {
		name := t.Name
		if name == "" {
			name = t.Code
		}
		groups[name] = append(groups[name], t)
	}

	names := make(map[string]string, len(translations))
	for name, group := range groups {
		if len(group) == 1 {
			names[group[0].Code] = name
			continue
		}
		attr := distinguishing(group)
		for _, t := range group {
			suffix := t.Code
			if attr != nil {
				suffix = attr(t)
			}
			names[t.Code] = name + " (" + suffix + ")"
		}
	}
	return names
}

var disambiguators = []func(domain.Translation) string{
	func(t domain.Translation) string { return t.Year },
	func(t domain.Translation) string { return t.Language },
	func(t domain.Translation) string { return t.Dialect },
	func(t domain.Translation) string { return t.Provider },
}

// distinguishing returns the first attribute whose values are non-empty and
// pairwise distinct across the group.
func distinguishing(group []domain.Translation) func(domain.Translation) string {
	for _, attr := range disambiguators {
		seen := make(map[string]bool, len(group))
		ok := true
		for _, t := range group {
			v := attr(t)
			if v == "" || seen[v] {
				ok = false
				break
			}
			seen[v] = true
		}
		if ok {
			return attr
		}
	}
	return nil
}

// substituteTitles replaces translation codes in title attributes with
// display names.
func substituteTitles(content string, names map[string]string, codes ...string) string {
	pairs := make([]string, 0, 2*len(codes))
	for _, code := range codes {
		name, ok := names[code]
		if code == "" || !ok {
			continue
		}
		pairs = append(pairs,
			`title="`+html.EscapeString(code)+`"`,
			`title="`+html.EscapeString(name)+`"`)
	}
	if len(pairs) == 0 {
		return content
	}
	return strings.NewReplacer(pairs...).Replace(content)
}

func findTranslation(translations []domain.Translation, code string) (domain.Translation, bool) {
	for _, t := range translations {
		if t.Code == code {
			return t, true
		}
	}
	return domain.Translation{}, false
}

// sameLanguage reports whether both translations are known and share a
// language.
func sameLanguage(translations []domain.Translation, primary, secondary string) bool {
	a, ok1 := findTranslation(translations, primary)
	b, ok2 := findTranslation(translations, secondary)
	return ok1 && ok2 && a.Language != "" && strings.EqualFold(a.Language, b.Language)
}
