package cmd

import (
	"context"
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/svexpr/syntax"
)

// Tags lists the syntax tags accepted in tree documents.
type Tags struct {
	Query string `arg:""              help:"Show only tags matching this fuzzy query." optional:""`
	Case  string `default:"canonical" help:"Spelling of the listed names."             enum:"canonical,snake,camel,kebab" short:"c"`
}

// Run executes the tags command.
func (t *Tags) Run(ctx context.Context) error {
	w := outputFrom(ctx)

	for _, name := range t.names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

// names returns the tag names to print, best fuzzy match first when a
// query is given and in tag order otherwise.
func (t *Tags) names() []string {
	var all []string
	for tag := range syntax.Tags() {
		all = append(all, tag.String())
	}

	if t.Query != "" {
		matches := fuzzy.Find(t.Query, all)

		all = make([]string, len(matches))
		for i, m := range matches {
			all[i] = m.Str
		}
	}

	for i, name := range all {
		all[i] = spell(name, t.Case)
	}

	return all
}

func spell(name, style string) string {
	switch style {
	case "snake":
		return strcase.ToSnake(name)
	case "camel":
		return strcase.ToCamel(name)
	case "kebab":
		return strcase.ToKebab(name)
	default:
		return name
	}
}
