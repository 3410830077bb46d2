// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations are used instead:
//
//	ui.Code.Sprint("sealpost encrypt post.md") // `backticks`
//	ui.Path.Sprint("_posts/secret.md")         // no decoration
//	ui.Highlight.Sprint("secret: true")        // 'single quotes'
//	ui.Muted.Sprint("dry run")                 // (parentheses)
//
// Succeeded, Failed and Hint build the one-line status messages printed at
// the end of a command.
package ui
