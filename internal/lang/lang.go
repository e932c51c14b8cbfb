// Package lang provides the localized message tables for user-visible text.
package lang

import "fmt"

// Table maps message keys to localized strings.
type Table map[string]string

// Msg returns the message for key, falling back to English when the
// key is missing from the table.
func (t Table) Msg(key string) string {
	if s, ok := t[key]; ok {
		return s
	}
	if s, ok := en[key]; ok {
		return s
	}
	return key
}

// Msgf formats the message for key with the given arguments.
func (t Table) Msgf(key string, args ...interface{}) string {
	return fmt.Sprintf(t.Msg(key), args...)
}

var tables = map[string]Table{
	"en": en,
	"fr": fr,
	"ja": ja,
}

// Get returns the table for a language code, defaulting to English.
func Get(code string) Table {
	if t, ok := tables[code]; ok {
		return t
	}
	return en
}

var en = Table{
	"pubmed_not_found":      "PMID: %s was not found.",
	"pubmed_wrong_format":   "Syntax error [pubmed plugin]",
	"plugin_cmd_not_found":  "Command '%s' was not found.",
	"pubmed_available_cmd":  "[Available commands]: %s",
	"no_abstract_available": "No abstract available.",
	"no_author_listed":      "No author listed.",
	"no_keywords":           "No keywords",
	"links":                 "Links",
	"similar_articles":      "Similar articles",
	"cited_by":              "Cited by",
	"references":            "References",
	"free_full_text":        "Free full text",
	"tweet_article":         "Tweet this article (link to the article)",
	"tweet_page":            "Tweet this article (link to this site)",
	"no_pdf":                "No PDF",
	"cache_cleared":         "Cleared.",
	"dir_cleared":           "Directory cleared.",
}

var fr = Table{
	"pubmed_not_found":      "PMID : %s introuvable.",
	"pubmed_wrong_format":   "Erreur de syntaxe [plugin pubmed]",
	"plugin_cmd_not_found":  "La commande '%s' est introuvable.",
	"pubmed_available_cmd":  "[Commandes disponibles] : %s",
	"no_abstract_available": "Pas de résumé disponible.",
	"no_author_listed":      "Aucun auteur listé.",
	"no_keywords":           "Aucun mots clés",
	"links":                 "Liens",
	"similar_articles":      "Articles similaires",
	"cited_by":              "Cité par",
	"references":            "Références",
	"free_full_text":        "Texte complet gratuit",
	"tweet_article":         "Twitter cet article (lien vers l'article)",
	"tweet_page":            "Twitter cet article (lien vers cette page)",
	"no_pdf":                "Pas de PDF",
	"cache_cleared":         "Cache vidé.",
	"dir_cleared":           "Répertoire supprimé.",
}

var ja = Table{
	"pubmed_not_found":      "PMID: %s は見つかりませんでした。",
	"pubmed_wrong_format":   "構文エラー [pubmed プラグイン]",
	"plugin_cmd_not_found":  "コマンド '%s' は見つかりません。",
	"pubmed_available_cmd":  "[利用可能なコマンド]: %s",
	"no_abstract_available": "抄録はありません。",
	"no_author_listed":      "著者情報なし。",
	"no_keywords":           "キーワードなし",
	"links":                 "リンク",
	"similar_articles":      "類似文献",
	"cited_by":              "被引用文献",
	"references":            "参考文献",
	"free_full_text":        "無料全文",
	"tweet_article":         "この論文をツイート（論文へのリンク）",
	"tweet_page":            "この論文をツイート（このページへのリンク）",
	"no_pdf":                "PDFなし",
	"cache_cleared":         "キャッシュを消去しました。",
	"dir_cleared":           "ディレクトリを削除しました。",
}
