package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// fallbackSlug é usado quando a normalização do título não deixa
// nenhum caractere aproveitável (ex.: título só com pontuação)
const fallbackSlug = "post"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normaliza um título em um slug seguro para URL:
// minúsculas, sequências não alfanuméricas viram um único hífen e
// hífens nas bordas são removidos. O resultado nunca é vazio.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return fallbackSlug
	}

	return slug
}

// SlugWithSuffix retorna o candidato de slug para a n-ésima tentativa
// de resolução de colisão: base, base-1, base-2, ...
func SlugWithSuffix(base string, n int) string {
	if n <= 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
