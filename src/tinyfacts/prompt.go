package tinyfacts

import (
	"sort"
	"strings"
	"text/template"

	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

var promptTemplate = template.Must(template.New("prompt").Parse(
	`You are to write an explanation of the following topic using only words from the Thing Explainer 1000 word list, as well as allowed inflected forms of those words. Here is a complete list of the allowed words and their forms:

{{.WordList}}

Be simple, but not minimalist - add interesting facts and details where you can. If a word you need is not available in the list, use a different way to say it using only the allowed words.
{{if .ExampleText}}
Here is an example of a text similar to what I would like you to produce:

Example Topic: "{{.ExampleTopic}}"
Example Text: {{.ExampleText}}
{{end}}
The topic to write about is: "{{.Topic}}".

Please use the provided tool to check your text for any words that are not in the allowed list, and revise your text until it passes the check.
Only answer with the final text that passes the check.
`))

// Example is an optional worked example shown to the generator.
type Example struct {
	Topic string
	Text  string
}

// BuildPrompt renders the generation prompt: the sorted allowed word list,
// an optional example, and the topic to explain.
func BuildPrompt(dict *wordforms.Dictionary, topic string, example *Example) (string, error) {
	allowed := dict.AllowedWords()
	words := make([]string, 0, len(allowed))
	for w := range allowed {
		words = append(words, w)
	}
	sort.Strings(words)

	data := struct {
		WordList     string
		Topic        string
		ExampleTopic string
		ExampleText  string
	}{
		WordList: strings.Join(words, ", "),
		Topic:    topic,
	}
	if example != nil {
		data.ExampleTopic = example.Topic
		data.ExampleText = example.Text
	}

	var sb strings.Builder
	if err := promptTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
