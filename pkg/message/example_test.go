package message_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/xssguard/pkg/defuse"
	"github.com/dmitrymomot/xssguard/pkg/message"
)

func ExampleFormatter_Format() {
	ctx := context.Background()
	f, err := message.New(ctx, message.MapSource(message.Catalog{
		"en": {
			"link": "<a href=javascript:alert(1)>%{label}</a>",
			"note": "Use <script> tags carefully, %{name}",
		},
	}), message.WithPostProcessors(message.Protect(defuse.Flags{})))
	if err != nil {
		panic(err)
	}

	fmt.Println(f.Format(ctx, "en", "link", message.FormatParse, "label", "Click & go"))
	fmt.Printf("%q\n", f.Format(ctx, "en", "note", message.FormatText, "name", "Ann"))
	fmt.Println(f.Format(ctx, "en", "missing", message.FormatText))
	// Output:
	// <a href&#61;javascript:alert(1)>Click &amp; go</a>
	// "Use <\u2060script> tags carefully, Ann"
	// ⧼missing⧽
}
