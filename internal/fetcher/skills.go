package fetcher

import (
	"regexp"
	"strings"
)

// skillPatterns maps canonical skill names to the phrases that imply
// them in a posting description. Order determines output order.
var skillPatterns = []struct {
	name    string
	aliases []string
}{
	{"Python", []string{"python"}},
	{"Go", []string{"golang", "go developer"}},
	{"Java", []string{"java"}},
	{"JavaScript", []string{"javascript", "js"}},
	{"TypeScript", []string{"typescript"}},
	{"SQL", []string{"sql", "mysql", "postgresql", "postgres"}},
	{"NoSQL", []string{"mongodb", "cassandra", "dynamodb"}},
	{"AWS", []string{"aws", "amazon web services"}},
	{"GCP", []string{"gcp", "google cloud"}},
	{"Azure", []string{"azure"}},
	{"Docker", []string{"docker"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"Terraform", []string{"terraform"}},
	{"Linux", []string{"linux"}},
	{"Git", []string{"git"}},
	{"CI/CD", []string{"ci/cd", "cicd", "jenkins", "github actions"}},
	{"React", []string{"react"}},
	{"Angular", []string{"angular"}},
	{"Vue", []string{"vue"}},
	{"Node.js", []string{"node.js", "nodejs"}},
	{"Django", []string{"django"}},
	{"Flask", []string{"flask"}},
	{"Spring", []string{"spring boot", "spring"}},
	{"REST", []string{"rest api", "restful"}},
	{"GraphQL", []string{"graphql"}},
	{"Kafka", []string{"kafka"}},
	{"Redis", []string{"redis"}},
	{"Elasticsearch", []string{"elasticsearch"}},
	{"Spark", []string{"spark"}},
	{"Hadoop", []string{"hadoop"}},
	{"Airflow", []string{"airflow"}},
	{"Machine Learning", []string{"machine learning", "scikit-learn", "sklearn"}},
	{"Deep Learning", []string{"deep learning", "tensorflow", "pytorch"}},
	{"NLP", []string{"nlp", "natural language processing"}},
	{"Data Analysis", []string{"pandas", "numpy", "data analysis"}},
	{"Tableau", []string{"tableau"}},
	{"Power BI", []string{"power bi"}},
	{"Excel", []string{"excel"}},
	{"Agile", []string{"agile", "scrum"}},
	{"C++", []string{"c++"}},
	{"C#", []string{"c#", ".net"}},
	{"Ruby", []string{"ruby"}},
	{"PHP", []string{"php"}},
	{"Swift", []string{"swift"}},
	{"Kotlin", []string{"kotlin"}},
}

var wordBoundary = regexp.MustCompile(`[a-z0-9#+./]+`)

// ExtractSkills scans free text for known skill phrases and returns
// canonical names in dictionary order. Single-word aliases match whole
// tokens only so "go" never fires inside "google".
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	if lower == "" {
		return nil
	}

	tokens := wordBoundary.FindAllString(lower, -1)
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}

	out := make([]string, 0, 8)
	for _, sp := range skillPatterns {
		for _, alias := range sp.aliases {
			if matchAlias(lower, tokenSet, alias) {
				out = append(out, sp.name)
				break
			}
		}
	}
	return out
}

func matchAlias(lower string, tokenSet map[string]struct{}, alias string) bool {
	if strings.ContainsAny(alias, " /") {
		return strings.Contains(lower, alias)
	}
	_, ok := tokenSet[alias]
	return ok
}
