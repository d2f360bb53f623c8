// Package message formats user-facing interface messages and passes every
// formatted string through an ordered list of post-processors before it is
// returned.
//
// A message is looked up in a Catalog by language and key, its %{name}
// placeholders are filled, and the result is shaped according to the
// requested Format:
//
//   - FormatPlain and FormatText substitute parameters verbatim.
//   - FormatParse keeps the template markup but entity-escapes every
//     parameter.
//   - FormatEscaped entity-escapes the complete result.
//
// Post-processors are where output protection lives. Protect runs the
// defuse rewrite engine in the mode matching the format, and Sanitize runs a
// bluemonday policy over FormatParse output:
//
//	f, err := message.New(ctx, message.FileSource("messages.yaml"),
//		message.WithPostProcessors(message.Protect(cfg.Flags())),
//	)
//	title := f.Format(ctx, "en", "page.title", message.FormatParse, "user", name)
//
// Missing messages render as ⧼key⧽ so a broken reference is visible on the
// page without ever echoing raw markup. Negotiate picks the catalog language
// for a request from explicit choices and Accept-Language values.
//
// Catalogs come from a Source. MapSource wraps an in-memory catalog,
// FileSource reads one YAML or JSON file and FSSource merges every supported
// file of a directory in an fs.FS, which covers embed.FS.
package message
